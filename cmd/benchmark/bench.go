package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/nulzo/unified-router/internal/cli"
	vegeta "github.com/tsenart/vegeta/v12/lib"
)

func main() {
	addr := flag.String("addr", "http://localhost:8080", "Base URL of a running router")
	token := flag.String("token", os.Getenv("ROUTER_API_KEY"), "Bearer token for /v1")
	duration := flag.Duration("duration", 10*time.Second, "Duration of the test")
	rate := flag.Int("rate", 50, "Requests per second")
	models := flag.String("models", "o3,gemini-2.5-pro,grok,llama3.2:latest,anthropic/claude-3-opus", "Comma separated models to route")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	flag.Parse()

	if *noColor {
		cli.SetEnabled(false)
	}

	base := strings.TrimRight(*addr, "/")
	waitForApp(base + "/health")

	names := strings.Split(*models, ",")
	var next uint64

	// round-robin over the model list
	targeter := func(t *vegeta.Target) error {
		i := atomic.AddUint64(&next, 1)
		model := strings.TrimSpace(names[int(i)%len(names)])

		t.Method = http.MethodGet
		t.URL = base + "/v1/routes/" + url.PathEscape(model)
		t.Header = http.Header{}
		if *token != "" {
			t.Header.Set("Authorization", "Bearer "+*token)
		}
		return nil
	}

	fmt.Printf("%s Routing benchmark: %s duration, %d req/s, %d models\n",
		cli.Arrow(), *duration, *rate, len(names))

	attacker := vegeta.NewAttacker(vegeta.KeepAlive(true))
	var metrics vegeta.Metrics
	statuses := map[uint16]int{}

	for res := range attacker.Attack(targeter, vegeta.Rate{Freq: *rate, Per: time.Second}, *duration, "Routing") {
		metrics.Add(res)
		statuses[res.Code]++
	}
	metrics.Close()

	fmt.Println("--------------------------------------------------")
	fmt.Println("50th percentile: ", metrics.Latencies.P50)
	fmt.Println("99th percentile: ", metrics.Latencies.P99)
	fmt.Println("Mean:            ", metrics.Latencies.Mean)
	fmt.Println("Max:             ", metrics.Latencies.Max)
	fmt.Printf("Success:         %.2f%%\n", metrics.Success*100)
	fmt.Printf("Throughput:      %.2f req/s\n", metrics.Throughput)
	fmt.Println("Status codes:")
	cli.PrettyPrint(statuses)
	fmt.Println("--------------------------------------------------")

	if len(metrics.Errors) > 0 {
		fmt.Println("Error Set (first 5 unique):")
		for i, msg := range metrics.Errors {
			if i == 5 {
				break
			}
			fmt.Println(cli.Mark(false), msg)
		}
	}
}

func waitForApp(url string) {
	for i := 0; i < 20; i++ {
		resp, err := http.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(500 * time.Millisecond)
	}
	log.Fatal("App timed out")
}
