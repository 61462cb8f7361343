package header

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	cases := []struct {
		name   string
		header string

		wantYear   string
		wantMetric string
		wantOK     bool
	}{
		{name: "metric then year", header: "Rate 2018", wantYear: "2018", wantMetric: "Rate", wantOK: true},
		{name: "year then metric", header: "2018 Rate", wantYear: "2018", wantMetric: "Rate", wantOK: true},
		{name: "bare year", header: "2018", wantYear: "2018", wantMetric: "Value", wantOK: true},
		{name: "year range", header: "Rate 2018-2019", wantYear: "2018-2019", wantMetric: "Rate", wantOK: true},
		{name: "en-dash range normalized", header: "Rate 2018–2019", wantYear: "2018-2019", wantMetric: "Rate", wantOK: true},
		{name: "parenthesized year", header: "Rate (2018)", wantYear: "2018", wantMetric: "Rate", wantOK: true},
		{name: "bracketed year", header: "Rate [2018]", wantYear: "2018", wantMetric: "Rate", wantOK: true},
		{name: "first year wins", header: "2018 vs 2019", wantYear: "2018", wantMetric: "vs 2019", wantOK: true},
		{name: "year embedded mid-header", header: "Crude rate 2019 per 100,000", wantYear: "2019", wantMetric: "Crude rate  per 100,000", wantOK: true},
		{name: "no year", header: "Sex", wantOK: false},
		{name: "short digit run", header: "Top 100", wantOK: false},
		{name: "empty header", header: "", wantOK: false},
		{name: "metric named Year", header: "Year 2018", wantYear: "2018", wantMetric: "Year", wantOK: true},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			year, metric, ok := Extract(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantYear, year)
			assert.Equal(t, tt.wantMetric, metric)
		})
	}
}

func TestClassify_PreservesOrder(t *testing.T) {
	headers := []string{"ID", "2018 Rate", "Sex", "2019 Rate"}
	c := Classify(headers)

	assert.Equal(t, []string{"ID", "Sex"}, c.Anchors)
	assert.Equal(t, []string{"2018 Rate", "2019 Rate"}, c.TimeSeries)
	assert.Equal(t, YearMetric{Year: "2018", Metric: "Rate"}, c.Mapping["2018 Rate"])
	assert.Equal(t, YearMetric{Year: "2019", Metric: "Rate"}, c.Mapping["2019 Rate"])
	assert.True(t, c.HasTimeSeries())
}

func TestClassify_NoTimeSeries(t *testing.T) {
	c := Classify([]string{"ID", "Sex", "Age group"})
	assert.Equal(t, []string{"ID", "Sex", "Age group"}, c.Anchors)
	assert.Empty(t, c.TimeSeries)
	assert.Empty(t, c.Mapping)
	assert.False(t, c.HasTimeSeries())
}

func TestClassify_AllTimeSeries(t *testing.T) {
	c := Classify([]string{"2018", "2019"})
	assert.Empty(t, c.Anchors)
	assert.Equal(t, []string{"2018", "2019"}, c.TimeSeries)
	assert.Equal(t, "Value", c.Mapping["2018"].Metric)
}
