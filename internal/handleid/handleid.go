// Package handleid stamps a per-process unique id on every service
// and subscription, for log correlation only -- it has nothing to do
// with the bus's own message-id counter. Grounded on
// server/store/types.UidGenerator's use of the same snowflake library
// for an analogous per-process unique-id concern.
package handleid

import sf "github.com/tinode/snowflake"

var generator *sf.SnowFlake

func init() {
	var err error
	generator, err = sf.NewSnowFlake(1)
	if err != nil {
		panic("handleid: failed to initialize snowflake generator: " + err.Error())
	}
}

// Next returns a fresh handle id. Callers that register many
// receivers at once may see contention on the generator's internal
// clock; that's acceptable since handle ids are for diagnostics, not
// the routing hot path.
func Next() uint64 {
	id, err := generator.Next()
	if err != nil {
		return 0
	}
	return id
}
