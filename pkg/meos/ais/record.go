package ais

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"
)

// TimeLayout is the timestamp format of the t column.
const TimeLayout = "2006-01-02 15:04:05"

const numColumns = 5

// Record is one position report.
type Record struct {
	Time time.Time
	MMSI int64
	Lat  float64
	Lon  float64
	SOG  float64
}

// ReadStats counts the rows seen by ReadRecords.
type ReadStats struct {
	Records int
	Skipped int
}

// ErrNoHeader is returned for empty input.
var ErrNoHeader = errors.New("ais: missing header row")

// ReadRecords reads every report from r. Rows with missing or malformed
// fields are skipped and counted.
func ReadRecords(r io.Reader) ([]Record, ReadStats, error) {
	var stats ReadStats

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, stats, ErrNoHeader
		}
		return nil, stats, fmt.Errorf("ais: read header: %w", err)
	}

	var out []Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				stats.Skipped++
				continue
			}
			return nil, stats, fmt.Errorf("ais: read: %w", err)
		}
		rec, ok := parseRow(row)
		if !ok {
			stats.Skipped++
			continue
		}
		out = append(out, rec)
		stats.Records++
	}
	return out, stats, nil
}

func parseRow(row []string) (Record, bool) {
	if len(row) != numColumns {
		return Record{}, false
	}
	for _, f := range row {
		if strings.TrimSpace(f) == "" {
			return Record{}, false
		}
	}
	t, err := time.ParseInLocation(TimeLayout, row[0], time.UTC)
	if err != nil {
		return Record{}, false
	}
	mmsi, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return Record{}, false
	}
	var vals [3]float64
	for i := range vals {
		if vals[i], err = strconv.ParseFloat(row[2+i], 64); err != nil {
			return Record{}, false
		}
	}
	return Record{Time: t, MMSI: mmsi, Lat: vals[0], Lon: vals[1], SOG: vals[2]}, true
}

// ship holds the reports of one MMSI in time order.
type ship struct {
	mmsi    int64
	records []Record
	dropped int
}

// groupByShip splits records by MMSI, orders each group by time and keeps
// the first report of every repeated timestamp. Ships come out in MMSI
// order.
func groupByShip(records []Record) []ship {
	idx := make(map[int64]int)
	var ships []ship
	for _, r := range records {
		i, ok := idx[r.MMSI]
		if !ok {
			i = len(ships)
			idx[r.MMSI] = i
			ships = append(ships, ship{mmsi: r.MMSI})
		}
		ships[i].records = append(ships[i].records, r)
	}

	for i := range ships {
		recs := ships[i].records
		sort.SliceStable(recs, func(a, b int) bool { return recs[a].Time.Before(recs[b].Time) })
		kept := recs[:0]
		for _, r := range recs {
			if len(kept) > 0 && r.Time.Equal(kept[len(kept)-1].Time) {
				ships[i].dropped++
				continue
			}
			kept = append(kept, r)
		}
		ships[i].records = kept
	}
	sort.Slice(ships, func(a, b int) bool { return ships[a].mmsi < ships[b].mmsi })
	return ships
}
