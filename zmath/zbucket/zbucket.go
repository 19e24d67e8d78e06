package zbucket

import (
	"errors"
	"math"
	"strconv"

	"github.com/torlangballe/zstats/zaccess"
	"github.com/torlangballe/zstats/zlog"
	"github.com/torlangballe/zstats/zmath"
	"github.com/torlangballe/zstats/zstr"
)

// DefaultLabelDigits is the fewest fraction digits bucket labels get if Opts.LabelDigits is 0.
const DefaultLabelDigits = 2

const (
	labelSeparator = " - "
	maxLabelDigits = 12
)

// ErrMalformedLabel is returned by MinMaxFromLabel for text that isn't "from - to".
var ErrMalformedLabel = errors.New("malformed bucket label")

// Opts configures how buckets are made from a set of values.
type Opts struct {
	Strict      bool           // use the exact domain, otherwise min is floored and max ceiled
	Bins        int            // <= 0 uses SturgesBins of the number of values
	LabelDigits int            // rounded fraction digits in labels, 0 is automatic, < 0 is exact
	Property    string         // path to the value in each item, "" uses the item itself
	Getter      zaccess.Getter // nil is zaccess.Default
}

func (o Opts) resolved(count int) Opts {
	if o.Bins <= 0 {
		o.Bins = SturgesBins(count)
	}
	o.Getter = zaccess.OrDefault(o.Getter)
	return o
}

// labelDigits returns LabelDigits if set. Otherwise it is DefaultLabelDigits, increased until
// boundaries size apart get distinct labels.
// Whole numbers never show decimals, as trailing zeros are removed.
func (o Opts) labelDigits(size float64) int {
	if o.LabelDigits != 0 {
		return o.LabelDigits
	}
	digits := DefaultLabelDigits
	for size > 0 && digits < maxLabelDigits && size < 10*math.Pow10(-digits) {
		digits++
	}
	return digits
}

// SturgesBins returns ceil(log2(n) + 1), or 0 for no values.
func SturgesBins(n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Ceil(math.Log2(float64(n)) + 1))
}

// Bucket is a range of values [From, To). The Last bucket of a set includes To.
type Bucket struct {
	Label string
	From  float64
	To    float64
	Last  bool
}

// Inside is true if v is in [From, To), or [From, To] for the Last bucket.
func (b Bucket) Inside(v float64) bool {
	if v < b.From {
		return false
	}
	if b.Last {
		return v <= b.To
	}
	return v < b.To
}

// MakeBuckets splits the domain of values into opts.Bins equal-width, contiguous buckets.
// A zero-width domain gives opts.Bins empty-ranged buckets, with all values in the last,
// or a single bucket if Bins isn't set. No values gives no buckets.
func MakeBuckets(values []float64, opts Opts) []Bucket {
	if len(values) == 0 {
		return nil
	}
	binsSet := opts.Bins > 0
	opts = opts.resolved(len(values))
	var a zmath.Accumulator
	a.AddAll(values)
	domain := a.Range
	if !opts.Strict {
		domain = domain.Widened()
	}
	bins := opts.Bins
	if domain.Length() == 0 && !binsSet {
		bins = 1
	}
	size := domain.Length() / float64(bins)
	digits := opts.labelDigits(size)
	buckets := make([]Bucket, bins)
	for i := range buckets {
		b := &buckets[i]
		b.From = domain.Min + float64(i)*size
		b.To = domain.Min + float64(i+1)*size
		if i == bins-1 {
			b.To = domain.Max
			b.Last = true
		}
		b.Label = zmath.MakeRange(b.From, b.To).NiceString(digits)
	}
	return buckets
}

// CalcBuckets makes buckets from the valid numbers at opts.Property in items.
func CalcBuckets(items []any, opts Opts) []Bucket {
	values := zaccess.Numbers(items, opts.Property, opts.Getter)
	return MakeBuckets(values, opts)
}

// MinMaxFromLabel parses a "from - to" label back into its numbers.
func MinMaxFromLabel(label string) (min, max float64, err error) {
	var sfrom, sto string
	if !zstr.SplitN(label, labelSeparator, &sfrom, &sto) {
		return 0, 0, zlog.Wrap(ErrMalformedLabel, label)
	}
	min, err = strconv.ParseFloat(sfrom, 64)
	if err != nil {
		return 0, 0, zlog.Wrap(ErrMalformedLabel, label, err)
	}
	max, err = strconv.ParseFloat(sto, 64)
	if err != nil {
		return 0, 0, zlog.Wrap(ErrMalformedLabel, label, err)
	}
	return min, max, nil
}

func countInside(buckets []Bucket, values []float64) []int {
	counts := make([]int, len(buckets))
	for _, v := range values {
		for i, b := range buckets {
			if b.Inside(v) {
				counts[i]++
				break
			}
		}
	}
	return counts
}
