package convergence

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/notargets/fluxlab/types"
)

// Study is the error series of one scheme over a list of resolutions
type Study struct {
	Title       string
	Order       int // Polynomial order, zero for finite volume schemes
	Resolutions []int
	Errors      []Norms
}

func NewStudy(title string, order int) *Study {
	return &Study{
		Title: title,
		Order: order,
	}
}

// Add appends one refinement level, resolutions are expected in ascending order
func (cs *Study) Add(n int, e Norms) {
	cs.Resolutions = append(cs.Resolutions, n)
	cs.Errors = append(cs.Errors, e)
}

// Series returns the errors of one norm across the resolutions
func (cs *Study) Series(kind types.NormType) []float64 {
	var (
		s = make([]float64, len(cs.Errors))
	)
	for i, e := range cs.Errors {
		s[i] = e.Get(kind)
	}
	return s
}

// Orders returns the observed orders in each norm
func (cs *Study) Orders() (o Orders, err error) {
	l1, l2, linf := cs.columns()
	if o.L1, err = Order(l1, cs.Resolutions); err != nil {
		return
	}
	if o.L2, err = Order(l2, cs.Resolutions); err != nil {
		return
	}
	o.Linf, err = Order(linf, cs.Resolutions)
	return
}

type Orders struct {
	L1, L2, Linf []float64
}

func (cs *Study) columns() (l1, l2, linf []float64) {
	return cs.Series(types.Norm_L1), cs.Series(types.Norm_L2), cs.Series(types.Norm_Linf)
}

// WriteTable prints the error and order table of the study,
//
//	n | error_1 | order | error_2 | order | error_inf | order
//
// with columns separated by delim.
func (cs *Study) WriteTable(w io.Writer, delim rune) (err error) {
	var (
		o Orders
	)
	if o, err = cs.Orders(); err != nil {
		return
	}
	if _, err = fmt.Fprintf(w, "%5s %c %12s %c %8s %c %12s %c %8s %c %12s %c %8s\n",
		"n", delim, "error_1", delim, "order", delim,
		"error_2", delim, "order", delim, "error_inf", delim, "order"); err != nil {
		return
	}
	for i, n := range cs.Resolutions {
		e := cs.Errors[i]
		if _, err = fmt.Fprintf(w, "%5d %c %12.2e %c %8.2f %c %12.2e %c %8.2f %c %12.2e %c %8.2f\n",
			n, delim, e.L1, delim, o.L1[i], delim,
			e.L2, delim, o.L2[i], delim, e.Linf, delim, o.Linf[i]); err != nil {
			return
		}
	}
	_, err = fmt.Fprintln(w)
	return
}

// WriteTableFile writes the table to fileName, an empty name is a no-op
func (cs *Study) WriteTableFile(fileName string, delim rune) (err error) {
	var (
		f *os.File
	)
	if len(fileName) == 0 {
		return
	}
	if f, err = os.Create(fileName); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	w := bufio.NewWriter(f)
	if err = cs.WriteTable(w, delim); err != nil {
		_ = f.Close()
		return
	}
	if err = w.Flush(); err != nil {
		_ = f.Close()
		return
	}
	return f.Close()
}

var studyHeader = []string{"title", "order", "n", "error_1", "error_2", "error_inf"}

// WriteStudyCSV writes the studies in the layout ReadStudyCSV reads back
func WriteStudyCSV(w io.Writer, studies ...*Study) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write(studyHeader); err != nil {
		return
	}
	for _, cs := range studies {
		for i, n := range cs.Resolutions {
			e := cs.Errors[i]
			if err = cw.Write([]string{
				cs.Title,
				strconv.Itoa(cs.Order),
				strconv.Itoa(n),
				formatFloat(e.L1),
				formatFloat(e.L2),
				formatFloat(e.Linf),
			}); err != nil {
				return
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadStudyCSV reads back studies written by WriteStudyCSV. Rows sharing the
// same title and order belong to the same study, studies keep the order in
// which they first appear.
func ReadStudyCSV(r io.Reader) (studies []*Study, err error) {
	var (
		records [][]string
		index   = make(map[string]*Study)
	)
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = len(studyHeader)
	if records, err = cr.ReadAll(); err != nil {
		return nil, fmt.Errorf("read study: %w", err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		var (
			order, n int
			e        Norms
			errs     [5]error
		)
		order, errs[0] = strconv.Atoi(rec[1])
		n, errs[1] = strconv.Atoi(rec[2])
		e.L1, errs[2] = strconv.ParseFloat(rec[3], 64)
		e.L2, errs[3] = strconv.ParseFloat(rec[4], 64)
		e.Linf, errs[4] = strconv.ParseFloat(rec[5], 64)
		if err = errors.Join(errs[:]...); err != nil {
			return nil, fmt.Errorf("read study line %d: %w", i+1, err)
		}
		key := rec[0] + "/" + rec[1]
		cs, ok := index[key]
		if !ok {
			cs = NewStudy(rec[0], order)
			index[key] = cs
			studies = append(studies, cs)
		}
		cs.Add(n, e)
	}
	return
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
