package batch

import (
	"fmt"

	wireway "Wirefill/internal/calc/wireway"
)

// MaxItems bounds one batch request.
const MaxItems = 500

type Item struct {
	Label string        `json:"label"`
	Input wireway.Input `json:"input"`
}

type BatchInput struct {
	Items []Item `json:"items"`
}

type Row struct {
	Label   string          `json:"label"`
	Input   wireway.Input   `json:"input"`
	Outcome wireway.Outcome `json:"outcome"`
	Display wireway.Display `json:"display"`
}

type BatchResult struct {
	Count   int   `json:"count"`
	Passed  int   `json:"passed"`
	Pending int   `json:"pending"`
	Results []Row `json:"results"`
}

func Calculate(in BatchInput) (BatchResult, error) {
	if len(in.Items) == 0 {
		return BatchResult{}, fmt.Errorf("no items")
	}
	if len(in.Items) > MaxItems {
		return BatchResult{}, fmt.Errorf("too many items: %d (max %d)", len(in.Items), MaxItems)
	}
	out := BatchResult{Results: make([]Row, 0, len(in.Items))}
	for _, item := range in.Items {
		out.add(item)
	}
	return out, nil
}

func (b *BatchResult) add(item Item) {
	o := wireway.Evaluate(item.Input)
	if res, ok := o.Result(); ok {
		if res.AmpacityPass && res.FillPass {
			b.Passed++
		}
	} else {
		b.Pending++
	}
	b.Count++
	b.Results = append(b.Results, Row{
		Label:   item.Label,
		Input:   item.Input,
		Outcome: o,
		Display: wireway.Format(o, item.Input),
	})
}
