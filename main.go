package main

// Diagnostic entry point: loads one telemetry log and dumps everything
// the query surface can derive from it. The interactive shell binds
// app.Service directly; this binary exists for inspecting logs from a
// terminal.

import (
	"flag"
	"fmt"
	"log"

	"telemview/app"
	"telemview/app/settings"
)

func main() {
	filePath := flag.String("file", "", "telemetry log to inspect")
	profilePath := flag.String("profile", "", "optional ingest profile (YAML)")
	column := flag.String("column", "", "column header to dump in detail (defaults to the first varying column)")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("usage: telemview -file <log.csv> [-profile <profile.yml>] [-column <header>]")
	}

	profile := settings.EffectiveProfile(*profilePath)
	svc := app.NewService()

	info, err := svc.OpenWithProfile(*filePath, profile)
	if err != nil {
		log.Fatalf("open %s: %v", *filePath, err)
	}
	session, err := svc.Session(info.ID)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("File:        %s\n", info.Path)
	fmt.Printf("Fingerprint: %s\n", info.Fingerprint)
	fmt.Printf("Size:        %d rows x %d columns\n\n", info.Rows, info.Columns)

	fmt.Println("Header groups:")
	for _, group := range session.HeadersMapping() {
		name := group.Name
		if !group.Grouped {
			name = "(ungrouped)"
		}
		fmt.Printf("  %s\n", name)
		for _, leaf := range group.Leaves {
			fmt.Printf("    [%d] %s\n", leaf.Index, leaf.Name)
		}
	}

	fmt.Printf("\nVarying columns:       %v\n", session.VaryingDataIndexList())
	fmt.Printf("Constant columns:      %v\n", session.ConstDataIndexList())
	fmt.Printf("Constant-zero columns: %v\n", session.ConstZeroDataIndexList())

	if series, err := session.TimeDataList(); err != nil {
		fmt.Printf("\nElapsed time: unavailable (%v)\n", err)
	} else {
		fmt.Printf("\nElapsed time: %s\n", elapsedSummary(series))
	}

	dumpColumn(session, *column)
}

// elapsedSummary describes an elapsed-time series. A headers-only log
// yields an empty series, so the total is only printed when there is a
// last sample to read.
func elapsedSummary(series []float64) string {
	if len(series) == 0 {
		return "0 samples"
	}
	return fmt.Sprintf("%d samples, %.3fs total", len(series), series[len(series)-1])
}

// dumpColumn prints one column's data, chart color and padded extrema.
func dumpColumn(session *app.Session, header string) {
	index := -1
	if header != "" {
		i, err := session.GetIndex(header)
		if err != nil {
			log.Fatalf("column lookup: %v", err)
		}
		index = i
	} else if varying := session.VaryingDataIndexList(); len(varying) > 0 {
		index = varying[0]
	}
	if index < 0 {
		return
	}

	label, err := session.GetHeader(index)
	if err != nil {
		log.Fatal(err)
	}
	data, err := session.GetData(index, nil)
	if err != nil {
		fmt.Printf("\nColumn [%d] %s: not numeric (%v)\n", index, label, err)
		return
	}
	color, err := session.GetUniqueColorCode(index)
	if err != nil {
		log.Fatal(err)
	}
	extrema, err := session.GetDataExtrema(index, nil)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("\nColumn [%d] %s\n", index, label)
	fmt.Printf("  color:   %s\n", color)
	fmt.Printf("  extrema: [%g, %g]\n", extrema.Min, extrema.Max)
	fmt.Printf("  data:    %v\n", data)
}
