package etfholdings

import (
	"encoding/json"
	"fmt"
	"io"
	"portfolioengine/internal/util"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocarina/gocsv"
)

// SectorWeights maps a title-cased sector label to its fraction of the fund
type SectorWeights map[string]float64

// normalize rescales the weights to sum to 1. Returns an empty map when
// there is nothing positive to scale.
func normalize(weights map[string]float64) SectorWeights {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	out := SectorWeights{}
	if total <= 0 {
		return out
	}
	for sector, w := range weights {
		out[sector] = w / total
	}
	return out
}

func parseWeight(value string) (float64, bool) {
	text := strings.TrimSpace(strings.ReplaceAll(value, "%", ""))
	text = strings.ReplaceAll(text, ",", "")
	if text == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// InferColumns picks the sector and weight columns of a holdings export.
// A "sector" column is preferred over an "industry" one, and "weight" over
// "percent".
func InferColumns(rows []map[string]string) (string, string) {
	if len(rows) == 0 {
		return "", ""
	}
	keys := []string{}
	for k := range rows[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	find := func(candidates ...string) string {
		for _, c := range candidates {
			for _, k := range keys {
				if strings.Contains(strings.ToLower(k), c) {
					return k
				}
			}
		}
		return ""
	}

	return find("sector", "industry"), find("weight", "percent")
}

// ExtractSectorWeights sums the weight column per sector. Empty column
// names are inferred from the rows.
func ExtractSectorWeights(rows []map[string]string, sectorColumn, weightColumn string) SectorWeights {
	if len(rows) == 0 {
		return SectorWeights{}
	}
	if sectorColumn == "" || weightColumn == "" {
		inferredSector, inferredWeight := InferColumns(rows)
		if sectorColumn == "" {
			sectorColumn = inferredSector
		}
		if weightColumn == "" {
			weightColumn = inferredWeight
		}
	}
	if sectorColumn == "" || weightColumn == "" {
		return SectorWeights{}
	}

	weights := map[string]float64{}
	for _, row := range rows {
		sector := util.TitleCaseLabel(row[sectorColumn])
		weight, ok := parseWeight(row[weightColumn])
		if sector != "" && ok {
			weights[sector] += weight
		}
	}
	return normalize(weights)
}

func ParseProviderCsv(r io.Reader, sectorColumn, weightColumn string) (SectorWeights, error) {
	rows, err := gocsv.CSVToMaps(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse holdings csv: %w", err)
	}
	return ExtractSectorWeights(rows, sectorColumn, weightColumn), nil
}

// ParseSchwabHtml reads the sector allocation table of a schwab portfolio
// page, falling back to the bulleted text summary
func ParseSchwabHtml(html string) (SectorWeights, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schwab html: %w", err)
	}

	var out SectorWeights
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		weights := parseSchwabTable(table)
		if len(weights) > 0 {
			out = weights
			return false
		}
		return true
	})
	if len(out) > 0 {
		return out, nil
	}

	return parseSchwabText(doc.Text()), nil
}

func parseSchwabTable(table *goquery.Selection) SectorWeights {
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return nil
	}

	headers := []string{}
	rows.First().Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, strings.ToLower(strings.TrimSpace(cell.Text())))
	})

	sectorIdx, weightIdx := -1, -1
	for i, h := range headers {
		if h == "sector" && sectorIdx < 0 {
			sectorIdx = i
		}
		if strings.Contains(h, "assets") && weightIdx < 0 {
			weightIdx = i
		}
	}
	if sectorIdx < 0 || weightIdx < 0 {
		return nil
	}

	weights := map[string]float64{}
	rows.Slice(1, goquery.ToEnd).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("th,td")
		if cells.Length() <= sectorIdx || cells.Length() <= weightIdx {
			return
		}
		sector := util.TitleCaseLabel(cells.Eq(sectorIdx).Text())
		weight, ok := parseWeight(cells.Eq(weightIdx).Text())
		if sector != "" && ok {
			weights[sector] += weight
		}
	})
	return normalize(weights)
}

var schwabBulletPattern = regexp.MustCompile(`(?:•|â€¢)\s*([A-Za-z0-9&/.\-\s]+?)\s*\|?\s*([0-9]+(?:\.[0-9]+)?)%`)

func parseSchwabText(text string) SectorWeights {
	weights := map[string]float64{}
	for _, match := range schwabBulletPattern.FindAllStringSubmatch(text, -1) {
		raw := strings.TrimSpace(match[1])
		if strings.HasSuffix(raw, " Disc") {
			raw = strings.TrimSuffix(raw, "Disc") + "Discretionary"
		}
		sector := util.TitleCaseLabel(raw)
		weight, ok := parseWeight(match[2])
		if sector != "" && ok {
			weights[sector] += weight
		}
	}
	return normalize(weights)
}

type yahooQuoteSummary struct {
	QuoteSummary struct {
		Result []struct {
			TopHoldings struct {
				SectorWeightings []map[string]json.RawMessage `json:"sectorWeightings"`
			} `json:"topHoldings"`
		} `json:"result"`
	} `json:"quoteSummary"`
}

// yahoo sends either a bare number or {"raw": x, "fmt": "x%"}
func parseYahooValue(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var wrapped struct {
		Raw *float64 `json:"raw"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Raw != nil {
		return *wrapped.Raw, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return parseWeight(s)
	}
	return 0, false
}

func ParseYahooTopHoldings(body []byte) (SectorWeights, error) {
	payload := yahooQuoteSummary{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse yahoo top holdings: %w", err)
	}
	if len(payload.QuoteSummary.Result) == 0 {
		return SectorWeights{}, nil
	}

	weights := map[string]float64{}
	for _, entry := range payload.QuoteSummary.Result[0].TopHoldings.SectorWeightings {
		for key, value := range entry {
			weight, ok := parseYahooValue(value)
			if !ok {
				continue
			}
			sector := util.TitleCaseLabel(strings.ReplaceAll(key, "_", " "))
			weights[sector] += weight
		}
	}
	return normalize(weights), nil
}
