package driver

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"strings"
	"time"

	set "github.com/deckarep/golang-set/v2"
	"github.com/m-manu/bucket-set/bytesutil"
	"github.com/m-manu/bucket-set/fmte"
	"github.com/m-manu/bucket-set/hashset"
)

// ErrVerification is returned by Run when the set disagrees with the reference set
var ErrVerification = errors.New("verification failed")

// Number of random probes used to look for false positives during verification
const absenceProbes = 10_000

// Report summarizes a run
type Report struct {
	Inserted  int
	Distinct  int
	Size      int
	Capacity  int
	Rehashes  int
	Elapsed   time.Duration
	HeapBytes uint64
}

func (r Report) String() string {
	var sb strings.Builder
	sb.WriteString(fmte.Sprintf("Inserted %d values (%d distinct) in %.1fs\n",
		r.Inserted, r.Distinct, r.Elapsed.Seconds()))
	sb.WriteString(fmte.Sprintf("Size %d, %d buckets after %d rehashes, load %.2f\n",
		r.Size, r.Capacity, r.Rehashes, float64(r.Size)/float64(r.Capacity)))
	sb.WriteString(fmte.Sprintf("Heap in use: %s\n", bytesutil.BinaryFormatU(r.HeapBytes)))
	return sb.String()
}

// Run inserts values into a new set built as per cfg and reports on the result.
// When cfg.Verify is set, the set is checked against a reference set and any
// mismatch is returned as an error along with the report.
func Run(cfg Config, values []int) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	s, err := hashset.NewInts(cfg.Capacity)
	if err != nil {
		return Report{}, fmt.Errorf("error creating set: %w", err)
	}
	s.OnRehash(func(e hashset.RehashEvent) {
		fmte.PrintfV("Rehashed at size %d: %d -> %d buckets\n", e.Size, e.From, e.To)
	})
	var oracle set.Set[int]
	if cfg.Verify {
		oracle = set.NewThreadUnsafeSetWithSize[int](len(values))
	}
	start := time.Now()
	for _, v := range values {
		s.Insert(v)
	}
	elapsed := time.Since(start)
	if oracle != nil {
		oracle.Append(values...)
	}
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	report := Report{
		Inserted:  len(values),
		Distinct:  s.Len(),
		Size:      s.Size(),
		Capacity:  s.Capacity(),
		Rehashes:  s.Rehashes(),
		Elapsed:   elapsed,
		HeapBytes: memStats.HeapAlloc,
	}
	if oracle != nil {
		if verifyErr := verify(s, oracle, cfg.Seed); verifyErr != nil {
			return report, verifyErr
		}
	}
	return report, nil
}

// Upper bound on mismatches collected before giving up
const maxMismatches = 10

func verify(s *hashset.HashSet[int], oracle set.Set[int], seed int64) error {
	var errs []error
	report := func(err error) bool {
		errs = append(errs, err)
		return len(errs) >= maxMismatches
	}
	if s.Len() != oracle.Cardinality() {
		report(fmt.Errorf("set holds %d distinct values, expected %d", s.Len(), oracle.Cardinality()))
	}
	oracle.Each(func(v int) bool {
		if !s.Contains(v) {
			return report(fmt.Errorf("value %d is missing", v))
		}
		return false
	})
	if len(errs) < maxMismatches {
		r := rand.New(rand.NewSource(seed + 1))
		for i := 0; i < absenceProbes; i++ {
			v := int(r.Int63()) - int(r.Int63())
			if !oracle.Contains(v) && s.Contains(v) {
				if report(fmt.Errorf("value %d was never inserted but is reported present", v)) {
					break
				}
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrVerification, fmte.Errors("mismatches", errs))
	}
	fmte.PrintfV("Verified %d values against reference set\n", oracle.Cardinality())
	return nil
}
