package geothermal

import (
	"sync"

	"github.com/geomodels/goreinject/utils"
)

// RunBatch simulates each record independently, in input order. results[i]
// is nil exactly when errs[i] is non-nil.
func RunBatch(records []WellRecord, p Parameters) (results []*Result, errs []error) {
	results = make([]*Result, len(records))
	errs = make([]error, len(records))
	for i, rec := range records {
		results[i], errs[i] = Simulate(rec, p)
	}
	return
}

// RunBatchParallel fans the records out over np goroutines. Runs share no
// mutable state, so the output is element-wise identical to RunBatch.
func RunBatchParallel(records []WellRecord, p Parameters, np int) (results []*Result, errs []error) {
	if np <= 1 || len(records) < 2 {
		return RunBatch(records, p)
	}
	if np > len(records) {
		np = len(records)
	}
	results = make([]*Result, len(records))
	errs = make([]error, len(records))
	var (
		pm = utils.NewPartitionMap(np, len(records))
		wg sync.WaitGroup
	)
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(n)
			for k := kMin; k < kMax; k++ {
				results[k], errs[k] = Simulate(records[k], p)
			}
		}(n)
	}
	wg.Wait()
	return
}

// GroupByReservoir buckets successful results by reservoir category for the
// presentation consumer, preserving input order within each bucket.
func GroupByReservoir(results []*Result) map[string][]*Result {
	groups := make(map[string][]*Result)
	for _, r := range results {
		if r == nil {
			continue
		}
		groups[r.Record.Reservoir] = append(groups[r.Record.Reservoir], r)
	}
	return groups
}
