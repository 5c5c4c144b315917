// Package render turns chart figures into self-contained HTML fragments
// backed by ECharts and renders the summary and dashboard pages around them.
//
// Every trace of a figure is converted into a complete ECharts option with
// go-echarts. A fragment holds all of them plus a dropdown per menu; picking
// a button swaps the option client side.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/kilianp07/roomutil/core/chart"
	"github.com/kilianp07/roomutil/core/model"
	"github.com/kilianp07/roomutil/core/report"
)

// DefaultAssetsHost serves the ECharts script.
const DefaultAssetsHost = "https://go-echarts.github.io/go-echarts-assets/assets/"

//go:embed templates/*.html
var templateFS embed.FS

// Renderer renders fragments and pages. It is safe for concurrent use.
type Renderer struct {
	tmpl       *template.Template
	assetsHost string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithAssetsHost overrides where the ECharts script is loaded from.
func WithAssetsHost(host string) Option {
	return func(r *Renderer) { r.assetsHost = host }
}

// New parses the embedded templates.
func New(options ...Option) (*Renderer, error) {
	tmpl, err := template.New("render").Funcs(template.FuncMap{
		"percent": chart.PercentText,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r := &Renderer{tmpl: tmpl, assetsHost: DefaultAssetsHost}
	for _, o := range options {
		o(r)
	}
	return r, nil
}

// TraceOption builds the ECharts option showing trace i of f alone.
func TraceOption(f chart.Figure, i int) map[string]any {
	t := f.Traces[i]
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			ChartID: f.ID,
			Height:  fmt.Sprintf("%dpx", f.Layout.Height),
		}),
		charts.WithTitleOpts(opts.Title{Title: f.Layout.Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithGridOpts(opts.Grid{ContainLabel: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:      f.Layout.XTitle,
			AxisLabel: &opts.AxisLabel{Rotate: float64(f.Layout.TickAngle), Interval: "0"},
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: f.Layout.YTitle}),
	)
	data := make([]opts.BarData, len(t.Values))
	for j, v := range t.Values {
		data[j] = opts.BarData{Value: v}
		if j < len(t.Text) {
			data[j].Label = &opts.Label{
				Show:      opts.Bool(true),
				Position:  "top",
				Formatter: types.FuncStr(t.Text[j]),
			}
		}
	}
	labels := t.Labels
	if labels == nil {
		labels = []string{}
	}
	bar.SetXAxis(labels).AddSeries(t.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: t.Color}))
	bar.Validate()
	return bar.JSON()
}

type fragmentView struct {
	chart.Figure
	Options []map[string]any
	Initial int
}

// Fragment renders f as an HTML fragment. It is not a complete document;
// pages include the ECharts script once.
func (r *Renderer) Fragment(f chart.Figure) (template.HTML, error) {
	view := fragmentView{Figure: f, Initial: f.VisibleIndex()}
	if view.Initial < 0 {
		view.Initial = 0
	}
	for i := range f.Traces {
		view.Options = append(view.Options, TraceOption(f, i))
	}
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "fragment", view); err != nil {
		return "", fmt.Errorf("render %s: %w", f.ID, err)
	}
	return template.HTML(buf.String()), nil
}

type pageView struct {
	Script string
}

func (r *Renderer) script() string { return r.assetsHost + opts.EchartsJS }

type summaryView struct {
	pageView
	report.Summary
}

// Summary renders the landing page.
func (r *Renderer) Summary(w io.Writer, s report.Summary) error {
	return r.page(w, "index", summaryView{pageView: pageView{Script: r.script()}, Summary: s})
}

type dashboardView struct {
	pageView
	*report.Dashboard
	Days   []string
	Charts []template.HTML
}

// Dashboard renders the dashboard page with its four charts.
func (r *Renderer) Dashboard(w io.Writer, d *report.Dashboard) error {
	view := dashboardView{pageView: pageView{Script: r.script()}, Dashboard: d}
	view.Days = append(view.Days, model.All)
	for _, day := range model.Days {
		view.Days = append(view.Days, string(day))
	}
	for _, f := range d.Figures.All() {
		frag, err := r.Fragment(f)
		if err != nil {
			return err
		}
		view.Charts = append(view.Charts, frag)
	}
	return r.page(w, "dashboard", view)
}

// page buffers the output so a failing template writes nothing.
func (r *Renderer) page(w io.Writer, name string, data any) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}
