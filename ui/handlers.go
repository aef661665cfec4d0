package ui

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"

	"datasight/app"
	"datasight/domain/dataset"
)

type dashboardView struct {
	Info            *dataset.DatasetInfo
	Correlations    []dataset.Correlation
	Trends          []dataset.TimeTrend
	OutlierColumns  []string
	Recommendations []string
}

func (a *App) handleDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := a.demoResult(r)
	if err != nil {
		a.log.Error("demo analysis failed: %v", err)
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	view := dashboardView{
		Info:            result.Info,
		Correlations:    result.Insights.Correlations,
		Trends:          result.Insights.TimeTrends,
		Recommendations: result.Insights.Recommendations,
	}
	for name := range result.Insights.Outliers {
		view.OutlierColumns = append(view.OutlierColumns, name)
	}

	if err := a.templates.ExecuteTemplate(w, "dashboard.html", view); err != nil {
		a.log.Error("template render failed: %v", err)
	}
}

// handleReport renders the insight set as an HTML report. The markdown
// intermediate keeps the output identical whether the text came from the
// generative provider or the fallback composer.
func (a *App) handleReport(w http.ResponseWriter, r *http.Request) {
	result, err := a.demoResult(r)
	if err != nil {
		http.Error(w, "analysis failed", http.StatusInternalServerError)
		return
	}

	insights := a.insights.Insights(r.Context(), result.Info, result.Insights)
	md := buildReportMarkdown(result, insights)
	html := markdown.ToHTML([]byte(md), nil, nil)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, "report.html", template.HTML(html)); err != nil {
		a.log.Error("template render failed: %v", err)
	}
}

func buildReportMarkdown(result *app.AnalysisResult, insights []dataset.Insight) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Analysis report: %s\n\n", result.Info.FileName)
	fmt.Fprintf(&b, "%d rows, %d columns. Quality: %d missing cells, %d duplicate rows, %d outliers.\n\n",
		result.Info.RowCount, result.Info.ColumnCount,
		result.Info.Quality.MissingValues, result.Info.Quality.DuplicateRows, result.Info.Quality.Outliers)

	b.WriteString("## Insights\n\n")
	for _, ins := range insights {
		fmt.Fprintf(&b, "**%s** (confidence %.2f)\n\n%s\n\n", ins.Title, ins.Confidence, ins.Body)
	}

	if len(result.Insights.Recommendations) > 0 {
		b.WriteString("## Recommendations\n\n")
		for _, rec := range result.Insights.Recommendations {
			fmt.Fprintf(&b, "- %s\n", rec)
		}
	}

	return b.String()
}
