package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"agropulse/internal/forecast"
	"agropulse/internal/history"
	"agropulse/internal/warehouse"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "predict":
		cmdPredict(os.Args[2:])
	case "history":
		cmdHistory(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli predict --item rice_local --price 50000 --fuel 1000 --diesel 1200")
	fmt.Println("  cli history --item rice_local --data final_dataset_cleaned_v3.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - predict prints the next-day price forecast for one commodity")
	fmt.Println("  - history dumps the last 90 observations as CSV to stdout")
}

func cmdPredict(args []string) {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	modelPath := fs.String("models", "all_models.json", "Path to the model warehouse JSON")
	item := fs.String("item", "", "Commodity id (e.g. rice_local)")
	price := fs.Float64("price", 0, "Current market price")
	fuel := fs.Float64("fuel", 0, "Current fuel price")
	diesel := fs.Float64("diesel", 0, "Current diesel price")
	_ = fs.Parse(args)

	if *item == "" {
		fmt.Println("--item is required")
		os.Exit(2)
	}

	wh, err := warehouse.Load(*modelPath)
	if err != nil {
		panic(err)
	}

	pred, err := forecast.New(wh).Predict(*item, *price, *fuel, *diesel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("%s: current %.2f -> next day %.2f (%+.2f%%)\n",
		pred.ItemID, pred.CurrentPrice, pred.PredictedPrice, pred.ChangePct)
}

func cmdHistory(args []string) {
	fs := flag.NewFlagSet("history", flag.ExitOnError)
	dataPath := fs.String("data", "final_dataset_cleaned_v3.csv", "Path to the historical dataset CSV")
	item := fs.String("item", "", "Commodity id (e.g. rice_local)")
	_ = fs.Parse(args)

	if *item == "" {
		fmt.Println("--item is required")
		os.Exit(2)
	}

	records, err := history.LoadCSV(*dataPath)
	if err != nil {
		panic(err)
	}
	store := history.NewStore(records)
	if store.Empty() {
		fmt.Fprintln(os.Stderr, "no historical data available")
		os.Exit(1)
	}

	dates, prices := store.Series(*item)
	w := csv.NewWriter(os.Stdout)
	defer w.Flush()
	if err := w.Write([]string{"date", "price_ngn"}); err != nil {
		panic(err)
	}
	for i := range dates {
		row := []string{dates[i], strconv.FormatFloat(prices[i], 'f', 2, 64)}
		if err := w.Write(row); err != nil {
			panic(err)
		}
	}
}
