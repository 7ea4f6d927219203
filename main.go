package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/xhhuango/json"

	"github.com/raymondctw/Option-Pricing-Model/models"
	"github.com/raymondctw/Option-Pricing-Model/positions"
	"github.com/raymondctw/Option-Pricing-Model/pricing"
	"github.com/raymondctw/Option-Pricing-Model/scanner"
)

type contractArgs struct {
	optionType string
	spot       float64
	strike     float64
	days       float64
	ratePct    float64
	side       string
	qty        int
	multiplier float64
}

func registerContractFlags(fs *flag.FlagSet, args *contractArgs) {
	fs.StringVar(&args.optionType, "type", "Call", "option type: Call or Put (C/P also accepted)")
	fs.Float64Var(&args.spot, "spot", 100, "spot price of the underlying")
	fs.Float64Var(&args.strike, "strike", 110, "strike price")
	fs.Float64Var(&args.days, "days", 22, "remaining trading days")
	fs.Float64Var(&args.ratePct, "rate", defaultRatePercent(), "risk-free or financing rate, in percent")
	fs.StringVar(&args.side, "side", "Long", "position side: Long or Short")
	fs.IntVar(&args.qty, "qty", 10, "contract quantity")
	fs.Float64Var(&args.multiplier, "multiplier", 1000, "contract multiplier")
}

func defaultRatePercent() float64 {
	if v := os.Getenv("RISK_FREE_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Warnf("ignoring invalid RISK_FREE_RATE %q", v)
	}
	return 2.0
}

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "price":
		runPrice(os.Args[2:])
	case "iv":
		runIV(os.Args[2:])
	case "scan":
		runScan(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: option-pricing <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  price  theoretical premium and Greeks for one contract")
	fmt.Fprintln(os.Stderr, "  iv     implied volatility from an observed premium")
	fmt.Fprintln(os.Stderr, "  scan   batch implied volatility over a CSV of quotes")
}

// buildPosition normalizes the string inputs and converts the tenor and
// rate out of their presentation units (trading days, percent).
func buildPosition(c contractArgs) (positions.Position, float64, float64, error) {
	optionType, err := models.ParseOptionType(c.optionType)
	if err != nil {
		return positions.Position{}, 0, 0, err
	}
	side, err := positions.ParseSide(c.side)
	if err != nil {
		return positions.Position{}, 0, 0, err
	}

	pos := positions.Position{
		OptionType: optionType,
		Side:       side,
		Quantity:   c.qty,
		Multiplier: c.multiplier,
	}
	return pos, c.days / models.TradingDays, c.ratePct / 100, nil
}

func runPrice(argv []string) {
	fs := flag.NewFlagSet("price", flag.ExitOnError)
	var c contractArgs
	registerContractFlags(fs, &c)
	volPct := fs.Float64("vol", 30, "annualized volatility, in percent")
	_ = fs.Parse(argv)

	pos, t, r, err := buildPosition(c)
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		os.Exit(1)
	}

	unit, err := positions.CalculateGreeks(c.spot, c.strike, t, r, *volPct/100, pos.OptionType)
	if err != nil {
		log.WithError(err).Error("pricing failed")
		os.Exit(1)
	}

	printReport(pos, unit, c.spot, c.strike)
}

func runIV(argv []string) {
	fs := flag.NewFlagSet("iv", flag.ExitOnError)
	var c contractArgs
	registerContractFlags(fs, &c)
	premium := fs.Float64("premium", 0, "observed option premium")
	_ = fs.Parse(argv)

	pos, t, r, err := buildPosition(c)
	if err != nil {
		log.WithError(err).Error("invalid arguments")
		os.Exit(1)
	}

	floor := positions.PremiumFloor(c.spot, c.strike, pos.OptionType)
	if *premium < floor {
		log.Errorf("premium %.4f is below the option's floor %.4f", *premium, floor)
		os.Exit(1)
	}

	iv, err := pricing.ImpliedVolatility(c.spot, c.strike, t, r, *premium, pos.OptionType)
	if err != nil {
		log.WithError(err).Error("implied volatility solve failed")
		os.Exit(1)
	}
	fmt.Printf("Implied Volatility: %.2f%%\n", iv*100)

	unit, err := positions.CalculateGreeks(c.spot, c.strike, t, r, iv, pos.OptionType)
	if err != nil {
		log.WithError(err).Error("pricing failed")
		os.Exit(1)
	}

	printReport(pos, unit, c.spot, c.strike)
}

func printReport(pos positions.Position, unit positions.BSMGreeks, spot, strike float64) {
	label, pct := positions.Moneyness(spot, strike, pos.OptionType)
	fmt.Printf("%s: %.2f%%\n", label, pct*100)

	report := positions.Report{Unit: unit, Position: pos.Exposure(unit, spot)}
	fmt.Print(report)

	action, shares := pos.DeltaHedge(unit.Delta)
	fmt.Printf("Delta neutral: %s %.0f shares of the underlying\n", action, shares)
}

func runScan(argv []string) {
	fs := flag.NewFlagSet("scan", flag.ExitOnError)
	quotesPath := fs.String("quotes", "quotes.csv", "CSV of observed option quotes")
	outPath := fs.String("out", "scan_results.json", "output JSON file")
	workers := fs.Int("workers", 0, "worker count (0 = one per CPU core)")
	_ = fs.Parse(argv)

	quotes, err := scanner.LoadQuotes(*quotesPath)
	if err != nil {
		log.WithError(err).Error("loading quotes")
		os.Exit(1)
	}

	sc := scanner.New()
	if *workers > 0 {
		sc.Workers = *workers
	}

	results := sc.Scan(quotes)
	summary := scanner.Summarize(results)

	payload, err := json.Marshal(struct {
		Summary scanner.Summary  `json:"summary"`
		Results []scanner.Result `json:"results"`
	}{summary, results})
	if err != nil {
		log.WithError(err).Error("marshalling results")
		os.Exit(1)
	}
	if err := os.WriteFile(*outPath, payload, 0644); err != nil {
		log.WithError(err).Errorf("writing %s", *outPath)
		os.Exit(1)
	}

	log.WithFields(log.Fields{
		"quotes": summary.Quotes,
		"solved": summary.Solved,
		"failed": summary.Failed,
		"file":   *outPath,
	}).Info("scan complete")
	fmt.Printf("Mean IV: %.2f%%  Median IV: %.2f%%  StdDev: %.2f%%\n",
		summary.MeanIV*100, summary.MedianIV*100, summary.StdDevIV*100)
}
