// Package validate checks generated dashboards and rules for PromQL that
// does not parse or that references series nothing exports.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/storefront-discovery/tools/dashgen/rules"
)

// Result collects validation findings. Errors fail generation; warnings
// are informational.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether no errors were found.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

// Err joins the errors, or returns nil.
func (r Result) Err() error {
	errs := make([]error, 0, len(r.Errors))
	for _, e := range r.Errors {
		errs = append(errs, errors.New(e))
	}
	return errors.Join(errs...)
}

// Dashboard validates every "expr" in the encoded dashboard JSON.
func Dashboard(data []byte, known map[string]bool) Result {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return Result{Errors: []string{fmt.Sprintf("decoding dashboard: %v", err)}}
	}

	var exprs []string
	collectExprs(doc, &exprs)

	var r Result
	if len(exprs) == 0 {
		r.Warnings = append(r.Warnings, "dashboard has no queries")
	}
	for _, e := range exprs {
		r.check("dashboard", e, known)
	}
	return r
}

// Rules validates every rule expression in cr. Recording rule names are
// accepted as known series for the rules that follow them.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var r Result
	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			if name == "" {
				r.Errors = append(r.Errors, fmt.Sprintf("%s: rule has neither record nor alert", g.Name))
				continue
			}
			r.check(g.Name+"/"+name, rule.Expr, known)
		}
	}
	return r
}

func (r *Result) check(where, expr string, known map[string]bool) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: parsing %q: %v", where, expr, err))
		return
	}
	for _, name := range metricNames(node) {
		if !known[name] {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
	}
}

func metricNames(node parser.Node) []string {
	var names []string
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		if vs, ok := n.(*parser.VectorSelector); ok && vs.Name != "" {
			names = append(names, vs.Name)
		}
		return nil
	})
	return names
}

func collectExprs(v any, out *[]string) {
	switch v := v.(type) {
	case map[string]any:
		for k, child := range v {
			if s, ok := child.(string); ok && k == "expr" {
				*out = append(*out, s)
				continue
			}
			collectExprs(child, out)
		}
	case []any:
		for _, child := range v {
			collectExprs(child, out)
		}
	}
}
