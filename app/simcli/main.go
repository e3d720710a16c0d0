package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/rezierosimeone00-ux/snappx-trl3-run1/business/simulation"
	"github.com/rezierosimeone00-ux/snappx-trl3-run1/domain"
)

// simcli runs the Random-vs-Thompson feed comparison over a range of seeds
// and prints averaged KPIs plus the CTR uplift, optionally dumping the
// per-seed rows to CSV for notebooks.

type seedRow struct {
	Seed    int
	Policy  string
	Summary domain.MetricsSummary
}

func main() {
	users := flag.Int("users", 1000, "simulated users per run")
	horizon := flag.Int("horizon", 900, "drop duration in seconds")
	dropsK := flag.Int("drops", 3, "number of drops in the feed")
	seeds := flag.Int("seeds", 5, "number of seeds to average over")
	csvPath := flag.String("csv", "", "write per-seed results to this CSV file")
	scenarioPath := flag.String("scenario", "", "YAML scenario file (overrides -users/-horizon/-drops)")
	flag.Parse()

	scenario, err := buildScenario(*scenarioPath, *users, *horizon, *dropsK)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var rows []seedRow
	for seed := 0; seed < *seeds; seed++ {
		cfg := scenario.FeedConfig(int64(seed))
		out, err := simulation.CompareFeedPolicies(scenario.Drops, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: seed %d: %v\n", seed, err)
			os.Exit(1)
		}
		for _, policy := range []string{simulation.PolicyRandom, simulation.PolicyThompson} {
			rows = append(rows, seedRow{Seed: seed, Policy: policy, Summary: out[policy]})
		}
	}

	avg := aggregate(rows)
	printReport(scenario, *seeds, avg)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, rows); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote per-seed results to %s\n", *csvPath)
	}
}

func buildScenario(path string, users, horizon, k int) (*simulation.Scenario, error) {
	if path != "" {
		return simulation.LoadScenario(path)
	}

	scenario := simulation.DefaultScenario(k)
	scenario.Users = users
	scenario.HorizonS = horizon
	for i := range scenario.Drops {
		scenario.Drops[i].DurationS = horizon
	}
	return scenario, nil
}

func aggregate(rows []seedRow) map[string]domain.MetricsSummary {
	sums := map[string]*domain.MetricsSummary{}
	counts := map[string]int{}

	for _, r := range rows {
		s, ok := sums[r.Policy]
		if !ok {
			s = &domain.MetricsSummary{}
			sums[r.Policy] = s
		}
		s.Views += r.Summary.Views
		s.Tokens += r.Summary.Tokens
		s.Redemptions += r.Summary.Redemptions
		s.CTR += r.Summary.CTR
		s.ConversionGivenToken += r.Summary.ConversionGivenToken
		s.UtilizationStock += r.Summary.UtilizationStock
		counts[r.Policy]++
	}

	out := make(map[string]domain.MetricsSummary, len(sums))
	for policy, s := range sums {
		n := counts[policy]
		if n == 0 {
			continue
		}
		out[policy] = domain.MetricsSummary{
			Views:                s.Views / n,
			Tokens:               s.Tokens / n,
			Redemptions:          s.Redemptions / n,
			CTR:                  s.CTR / float64(n),
			ConversionGivenToken: s.ConversionGivenToken / float64(n),
			UtilizationStock:     s.UtilizationStock / float64(n),
		}
	}
	return out
}

func printReport(scenario *simulation.Scenario, seeds int, avg map[string]domain.MetricsSummary) {
	fmt.Println()
	fmt.Println("Snappx drop feed comparison")
	fmt.Printf("Params: scenario=%s, users=%d, horizon=%ds, drops=%d, seeds=%d\n",
		scenario.Name, scenario.Users, scenario.HorizonS, len(scenario.Drops), seeds)
	fmt.Println("----------------------------------------------------------------")

	for _, policy := range []string{simulation.PolicyRandom, simulation.PolicyThompson} {
		s := avg[policy]
		fmt.Printf("%-9s | CTR=%.4f | conv_given_token=%.4f | util_stock=%.4f | tokens=%d | views=%d\n",
			policy, s.CTR, s.ConversionGivenToken, s.UtilizationStock, s.Tokens, s.Views)
	}

	fmt.Println("----------------------------------------------------------------")
	uplift := math.NaN()
	if randomCTR := avg[simulation.PolicyRandom].CTR; randomCTR > 0 {
		uplift = (avg[simulation.PolicyThompson].CTR/randomCTR - 1.0) * 100.0
	}
	fmt.Printf("Uplift CTR (Thompson vs Random): %.2f%%\n\n", uplift)
}

func writeCSV(path string, rows []seedRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"seed", "policy", "views", "tokens", "redemptions", "ctr", "conversion_given_token", "utilization_stock"}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range rows {
		record := []string{
			strconv.Itoa(r.Seed),
			r.Policy,
			strconv.Itoa(r.Summary.Views),
			strconv.Itoa(r.Summary.Tokens),
			strconv.Itoa(r.Summary.Redemptions),
			strconv.FormatFloat(r.Summary.CTR, 'f', 6, 64),
			strconv.FormatFloat(r.Summary.ConversionGivenToken, 'f', 6, 64),
			strconv.FormatFloat(r.Summary.UtilizationStock, 'f', 6, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	return nil
}
