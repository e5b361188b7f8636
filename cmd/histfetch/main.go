package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"HistFetch/fetcher"
	"HistFetch/internal/config"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	flagConfig := flag.String("config", "", "path to config file")
	flagTicker := flag.String("ticker", "", "ticker symbol")
	flagInterval := flag.String("interval", "", "sampling interval (1d, 1wk, 1mo)")
	flagEvent := flag.String("event", "", "event kind (history, div, split)")
	flag.Parse()
	if *flagConfig != "" {
		cfgPath = *flagConfig
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *flagTicker != "" {
		cfg.Query.Ticker = *flagTicker
	}
	if *flagInterval != "" {
		cfg.Query.Interval = *flagInterval
	}
	if *flagEvent != "" {
		cfg.Query.Event = *flagEvent
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	f := fetcher.New(cfg.Query.Ticker, cfg.Query.Start, cfg.Query.End, cfg.Query.Interval)
	f.Client = newHTTPClient(cfg.Proxy)
	log.Printf("[INFO] fetching %s for %s (%d..%d, %s)",
		cfg.Query.Event, f.Ticker, f.Start, f.End, f.Interval)

	var table *fetcher.Table
	switch cfg.Query.Event {
	case "div":
		table, err = f.GetDividends()
	case "split":
		table, err = f.GetSplits()
	default:
		table, err = f.GetHistorical()
	}
	if err != nil {
		log.Fatalf("[FATAL] fetch: %v", err)
	}
	log.Printf("[INFO] %d rows returned", len(table.Rows))

	if cfg.Output == "json" {
		s, err := table.JSON()
		if err != nil {
			log.Fatalf("[FATAL] serialize: %v", err)
		}
		fmt.Println(s)
		return
	}
	printTable(table)
}

// newHTTPClient builds the transport for the fetcher, honoring an optional
// proxy and imposing the caller-side timeout.
func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

func printTable(t *fetcher.Table) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for i, col := range t.Columns {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, col)
	}
	fmt.Fprintln(w)
	for _, r := range t.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Date, fmtFloat(r.Open), fmtFloat(r.High), fmtFloat(r.Low), fmtFloat(r.Close), fmtInt(r.Volume))
	}
	w.Flush()
}

func fmtFloat(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func fmtInt(v *int64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatInt(*v, 10)
}
