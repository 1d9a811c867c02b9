package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	jcr "github.com/tinode/jsonco"

	"github.com/coopbus/coopbus"
	"github.com/coopbus/coopbus/flags"
	"github.com/coopbus/coopbus/status"
)

type configType struct {
	Listen      string `json:"listen"`
	MetricsPath string `json:"metrics_path"`
}

// demoHandles keeps every receiver registered by registerDemoHandlers
// alive for the life of the process. Subscribe/Serve hand back only a
// weakly-held reference: dropping it lets the receiver expire, exactly
// as it would for any other caller of the bus.
var demoHandles struct {
	clock, echo *coopbus.Service
	log         *coopbus.Subscription
	watch       *coopbus.Subscription
}

func main() {
	conffile := flag.String("config", "./busdemo.conf", "Path to config file.")
	listenOn := flag.String("listen", "", "Override config's listen address.")
	flag.Parse()

	config := configType{Listen: ":6060", MetricsPath: "/metrics"}
	if file, err := os.Open(*conffile); err != nil {
		log.Println("Failed to read config file, using defaults:", err)
	} else {
		defer file.Close()
		if err := json.NewDecoder(jcr.New(file)).Decode(&config); err != nil {
			log.Fatal("Failed to parse config file:", err)
		}
	}
	if *listenOn != "" {
		config.Listen = *listenOn
	}

	registerDemoHandlers()

	registry := prometheus.NewRegistry()
	registry.MustRegister(coopbus.Metrics())

	mux := http.NewServeMux()
	mux.Handle(config.MetricsPath, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	log.Println("busdemo listening on", config.Listen)
	log.Fatal(http.ListenAndServe(config.Listen, mux))
}

// registerDemoHandlers installs a couple of demo services and
// subscribers under demo/, exercised by the metrics endpoint above and
// by nothing else -- a real deployment wires its own topics here.
func registerDemoHandlers() {
	var err error

	clock := coopbus.NewTopic("demo/clock")
	demoHandles.clock, err = clock.ServeDefault(func(r *coopbus.Request) {
		r.RespondOK(time.Now().UTC().Format(time.RFC3339))
	})
	if err != nil {
		log.Fatal("demo/clock:", err)
	}

	echo := coopbus.NewTopic("demo/echo")
	demoHandles.echo, err = echo.ServeDefault(func(r *coopbus.Request) {
		if r.Content.Value() == nil {
			r.Respond(status.BadRequest, "missing payload")
			return
		}
		r.RespondOK(r.Content.Value())
	})
	if err != nil {
		log.Fatal("demo/echo:", err)
	}

	logTopic := coopbus.NewTopic("demo/log")
	demoHandles.log = logTopic.SubscribeDefault(func(e *coopbus.Event) {})

	demoHandles.watch = coopbus.DiscoverServices(func(svc *coopbus.Service) {
		logEvent(logTopic, "service installed: "+svc.Topic().Path())
	}, coopbus.RootTopic(), flags.NoSpecialHandling)
}

func logEvent(topic coopbus.Topic, msg string) {
	topic.PublishDefault(status.OK, msg)
}
