package scanner

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/gocarina/gocsv"
	"github.com/shirou/gopsutil/cpu"
	log "github.com/sirupsen/logrus"
	mpb "github.com/vbauerster/mpb/v7"
	"github.com/vbauerster/mpb/v7/decor"

	"github.com/raymondctw/Option-Pricing-Model/models"
	"github.com/raymondctw/Option-Pricing-Model/positions"
	"github.com/raymondctw/Option-Pricing-Model/pricing"
)

const resultBatchSize = 1000

// Result is the implied volatility recovered for one quote, with the
// contract revalued at that volatility. Error carries the failure for
// quotes whose premium could not be inverted.
type Result struct {
	Quote      models.OptionQuote  `json:"quote"`
	ImpliedVol float64             `json:"implied_volatility"`
	Greeks     positions.BSMGreeks `json:"greeks"`
	Error      string              `json:"error,omitempty"`
}

// Scanner runs implied-volatility recovery over a batch of quotes.
type Scanner struct {
	Workers  int
	Progress io.Writer
}

func New() *Scanner {
	return &Scanner{Workers: workerCount(), Progress: os.Stdout}
}

// workerCount prefers the logical core count reported by gopsutil and
// falls back to the runtime's view.
func workerCount() int {
	if n, err := cpu.Counts(true); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}

// LoadQuotes reads the scan input CSV.
func LoadQuotes(path string) ([]models.OptionQuote, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening quotes file: %w", err)
	}
	defer f.Close()

	var quotes []models.OptionQuote
	if err := gocsv.UnmarshalFile(f, &quotes); err != nil {
		return nil, fmt.Errorf("parsing quotes file: %w", err)
	}
	return quotes, nil
}

// Scan recovers the implied volatility of every quote, fanning the work
// out over the worker pool. Results are sorted by implied volatility,
// highest first; failed quotes sort last.
func (sc *Scanner) Scan(quotes []models.OptionQuote) []Result {
	if len(quotes) == 0 {
		return nil
	}

	log.WithFields(log.Fields{
		"quotes":  len(quotes),
		"workers": sc.Workers,
	}).Info("starting implied volatility scan")

	p := mpb.New(mpb.WithWidth(64), mpb.WithOutput(sc.Progress))
	bar := p.AddBar(int64(len(quotes)),
		mpb.PrependDecorators(
			decor.Name("Progress"),
			decor.Percentage(decor.WCSyncSpace),
		),
		mpb.AppendDecorators(
			decor.CountersNoUnit("(%d / %d)", decor.WCSyncSpace),
		),
	)

	results := processQuotes(quotes, sc.Workers, bar)
	p.Wait()

	sort.Slice(results, func(i, j int) bool {
		if (results[i].Error == "") != (results[j].Error == "") {
			return results[i].Error == ""
		}
		return results[i].ImpliedVol > results[j].ImpliedVol
	})

	return results
}

func processQuotes(quotes []models.OptionQuote, numWorkers int, bar *mpb.Bar) []Result {
	var wg sync.WaitGroup
	jobChan := make(chan models.OptionQuote, len(quotes))
	resultChan := make(chan Result, resultBatchSize)
	var processed int64

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go worker(jobChan, resultChan, &wg, &processed, bar)
	}

	go func() {
		for _, q := range quotes {
			jobChan <- q
		}
		close(jobChan)
	}()

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []Result
	for r := range resultChan {
		results = append(results, r)
	}
	return results
}

func worker(jobs <-chan models.OptionQuote, results chan<- Result, wg *sync.WaitGroup, processed *int64, bar *mpb.Bar) {
	defer wg.Done()
	for q := range jobs {
		results <- evaluate(q)
		atomic.AddInt64(processed, 1)
		bar.Increment()
	}
}

// evaluate recovers one quote's implied volatility and revalues the
// contract at it.
func evaluate(q models.OptionQuote) Result {
	res := Result{Quote: q}

	optionType, err := models.ParseOptionType(q.OptionType)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	t := q.YearsToMaturity()
	r := q.Rate()

	iv, err := pricing.ImpliedVolatility(q.Spot, q.Strike, t, r, q.Premium, optionType)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.ImpliedVol = iv

	greeks, err := positions.CalculateGreeks(q.Spot, q.Strike, t, r, iv, optionType)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Greeks = greeks

	return res
}
