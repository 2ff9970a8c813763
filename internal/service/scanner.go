package service

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Metric statuses relative to the normal range.
const (
	MetricLow    = "low"
	MetricNormal = "normal"
	MetricHigh   = "high"
)

// MetricRange is the inclusive normal range for a blood test metric.
type MetricRange struct {
	Min float64
	Max float64
}

// MetricReading is one extracted metric value with its classification.
type MetricReading struct {
	Value  float64 `json:"value"`
	Status string  `json:"status"`
}

// ScanResult is the structured outcome of analyzing a report's text.
type ScanResult struct {
	Conditions []string
	Metrics    map[string]MetricReading
	Insights   string
}

// DefaultConditionKeywords maps lowercase condition names to the report
// phrases that indicate them. The condition names overlap with the engine's
// condition map; both vocabularies must stay lowercase.
func DefaultConditionKeywords() map[string][]string {
	return map[string][]string{
		"diabetes":     {"diabetes", "glucose", "hba1c", "blood sugar", "hyperglycemia"},
		"anemia":       {"anemia", "hemoglobin", "iron deficiency", "low hb"},
		"hypertension": {"hypertension", "high blood pressure", "bp elevated"},
		"cholesterol":  {"cholesterol", "ldl", "hdl", "triglycerides", "lipid"},
		"thyroid":      {"thyroid", "tsh", "t3", "t4", "hypothyroid", "hyperthyroid"},
		"kidney":       {"kidney", "creatinine", "urea", "renal"},
		"liver":        {"liver", "sgpt", "sgot", "bilirubin", "hepatic"},
	}
}

// DefaultNormalRanges holds normal ranges for common blood tests.
func DefaultNormalRanges() map[string]MetricRange {
	return map[string]MetricRange{
		"glucose":       {Min: 70, Max: 100},
		"hba1c":         {Min: 4.0, Max: 5.6},
		"hemoglobin":    {Min: 12.0, Max: 16.0},
		"cholesterol":   {Min: 125, Max: 200},
		"ldl":           {Min: 0, Max: 100},
		"hdl":           {Min: 40, Max: 60},
		"triglycerides": {Min: 0, Max: 150},
		"tsh":           {Min: 0.4, Max: 4.0},
	}
}

// metricNames are the metrics looked for in report text, in scan order.
var metricNames = []string{
	"glucose", "hba1c", "hemoglobin", "cholesterol", "ldl", "hdl",
	"triglycerides", "tsh", "creatinine",
}

// ReportScanner detects medical conditions and health metrics in the text
// already extracted from an uploaded report. OCR happens upstream; the
// scanner only consumes free text. Keyword and range tables are injected at
// construction so tests can supply alternates.
type ReportScanner struct {
	keywords map[string][]string
	ranges   map[string]MetricRange
	patterns map[string]*regexp.Regexp
}

func NewReportScanner(keywords map[string][]string, ranges map[string]MetricRange) *ReportScanner {
	if keywords == nil {
		keywords = DefaultConditionKeywords()
	}
	if ranges == nil {
		ranges = DefaultNormalRanges()
	}
	patterns := make(map[string]*regexp.Regexp, len(metricNames))
	for _, name := range metricNames {
		patterns[name] = regexp.MustCompile(name + `[:\s]*(\d+\.?\d*)`)
	}
	return &ReportScanner{
		keywords: keywords,
		ranges:   ranges,
		patterns: patterns,
	}
}

// Analyze runs condition detection, metric extraction and insight generation
// over the given text.
func (s *ReportScanner) Analyze(text string) *ScanResult {
	conditions := s.DetectConditions(text)
	metrics := s.ExtractMetrics(text)
	return &ScanResult{
		Conditions: conditions,
		Metrics:    metrics,
		Insights:   s.generateInsights(conditions, metrics),
	}
}

// DetectConditions returns the condition names whose keywords appear in the
// text.
func (s *ReportScanner) DetectConditions(text string) []string {
	lower := strings.ToLower(text)
	var detected []string
	for condition, keywords := range s.keywords {
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				detected = appendUnique(detected, condition)
				break
			}
		}
	}
	return detected
}

// ExtractMetrics pulls numeric metric values out of the text and classifies
// each against its normal range. Metrics without a known range get no status.
func (s *ReportScanner) ExtractMetrics(text string) map[string]MetricReading {
	lower := strings.ToLower(text)
	metrics := make(map[string]MetricReading)

	for _, name := range metricNames {
		match := s.patterns[name].FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		value, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}

		reading := MetricReading{Value: value}
		if r, ok := s.ranges[name]; ok {
			switch {
			case value < r.Min:
				reading.Status = MetricLow
			case value > r.Max:
				reading.Status = MetricHigh
			default:
				reading.Status = MetricNormal
			}
		}
		metrics[name] = reading
	}

	return metrics
}

func (s *ReportScanner) generateInsights(conditions []string, metrics map[string]MetricReading) string {
	var insights []string

	conditionInsights := map[string]string{
		"diabetes":     "Diabetes indicators found. Focus on low glycemic index foods.",
		"anemia":       "Anemia detected. Increase iron-rich foods and vitamin C.",
		"hypertension": "High blood pressure indicators. Reduce sodium intake.",
		"cholesterol":  "Cholesterol management needed. Increase fiber and omega-3.",
	}
	for _, c := range conditions {
		if insight, ok := conditionInsights[c]; ok {
			insights = append(insights, insight)
		}
	}

	for _, name := range metricNames {
		reading, ok := metrics[name]
		if !ok {
			continue
		}
		switch reading.Status {
		case MetricHigh:
			insights = append(insights, fmt.Sprintf("Elevated %s levels detected.", name))
		case MetricLow:
			insights = append(insights, fmt.Sprintf("Low %s levels detected.", name))
		}
	}

	if len(insights) == 0 {
		return "No significant health concerns detected in the report."
	}
	return strings.Join(insights, " ")
}
