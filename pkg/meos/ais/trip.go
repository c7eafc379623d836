package ais

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/mobilitydb/meos-go/pkg/meos"
	"github.com/mobilitydb/meos-go/pkg/meos/logging"
)

// DefaultSRID is WGS 84, the reference system of AIS positions.
const DefaultSRID = 4326

// ErrTooManyShips is returned when the input holds more ships than
// Options.MaxShips allows.
var ErrTooManyShips = errors.New("ais: too many ships")

// Options controls Assemble.
type Options struct {
	// MaxShips bounds the number of distinct MMSIs. Zero means no limit.
	MaxShips int
	// SRID of the positions. Zero selects DefaultSRID.
	SRID int
	// Geodetic builds geography trips, so lengths are in metres.
	Geodetic bool
	Logger   logging.Logger
}

// Trip is the assembled movement of one ship.
type Trip struct {
	MMSI    int64
	Reports int
	Path    *meos.TPoint
	SOG     *meos.TFloat
}

// Free releases the native values of the trip.
func (t *Trip) Free() {
	t.Path.Free()
	t.SOG.Free()
}

// FreeAll releases every trip.
func FreeAll(trips []*Trip) {
	for _, t := range trips {
		t.Free()
	}
}

// Assemble builds one trip per ship. On error every trip built so far is
// released.
func Assemble(ctx context.Context, records []Record, opts Options) ([]*Trip, error) {
	if opts.SRID == 0 {
		opts.SRID = DefaultSRID
	}
	if opts.Logger == nil {
		opts.Logger = logging.New(nil)
	}

	ships := groupByShip(records)
	if opts.MaxShips > 0 && len(ships) > opts.MaxShips {
		return nil, fmt.Errorf("%w: %d ships, limit %d", ErrTooManyShips, len(ships), opts.MaxShips)
	}

	trips := make([]*Trip, 0, len(ships))
	for _, s := range ships {
		if err := ctx.Err(); err != nil {
			FreeAll(trips)
			return nil, err
		}
		if s.dropped > 0 {
			opts.Logger.Debug(ctx, "dropped repeated timestamps", "mmsi", s.mmsi, "count", s.dropped)
		}
		trip, err := assembleShip(s, opts)
		if err != nil {
			FreeAll(trips)
			return nil, fmt.Errorf("ais: mmsi %d: %w", s.mmsi, err)
		}
		trips = append(trips, trip)
	}
	opts.Logger.Info(ctx, "assembled trips", "ships", len(trips), "records", len(records))
	return trips, nil
}

func position(r Record, opts Options) (*meos.Geometry, error) {
	if opts.Geodetic {
		return meos.ParseGeography(fmt.Sprintf("SRID=%d;POINT(%s %s)", opts.SRID,
			strconv.FormatFloat(r.Lon, 'g', -1, 64), strconv.FormatFloat(r.Lat, 'g', -1, 64)))
	}
	return meos.NewPoint(r.Lon, r.Lat, opts.SRID)
}

func assembleShip(s ship, opts Options) (*Trip, error) {
	points := make([]meos.Sample[*meos.Geometry], 0, len(s.records))
	defer func() {
		for _, p := range points {
			p.Value.Free()
		}
	}()
	sog := make([]meos.Sample[float64], 0, len(s.records))

	for _, r := range s.records {
		g, err := position(r, opts)
		if err != nil {
			return nil, err
		}
		points = append(points, meos.Sample[*meos.Geometry]{Value: g, Time: r.Time})
		sog = append(sog, meos.Sample[float64]{Value: r.SOG, Time: r.Time})
	}

	path, err := meos.NewTPointSequence(points, meos.Linear)
	if err != nil {
		return nil, err
	}
	speed, err := meos.NewTFloatSequence(sog, meos.Linear)
	if err != nil {
		path.Free()
		return nil, err
	}
	return &Trip{MMSI: s.mmsi, Reports: len(s.records), Path: path, SOG: speed}, nil
}

// Summary describes one trip.
type Summary struct {
	MMSI     int64
	Reports  int
	Instants int
	Start    time.Time
	End      time.Time
	Length   float64
	AvgSOG   float64
}

// Summarize computes the summary of t.
func Summarize(t *Trip) (Summary, error) {
	s := Summary{MMSI: t.MMSI, Reports: t.Reports}
	var err error
	if s.Instants, err = t.Path.NumInstants(); err != nil {
		return Summary{}, err
	}
	if s.Start, err = t.Path.StartTimestamp(); err != nil {
		return Summary{}, err
	}
	if s.End, err = t.Path.EndTimestamp(); err != nil {
		return Summary{}, err
	}
	if s.Length, err = meos.Length(t.Path); err != nil {
		return Summary{}, err
	}
	if s.AvgSOG, err = meos.TimeWeightedAverage(t.SOG); err != nil {
		return Summary{}, err
	}
	return s, nil
}

// WriteTrips writes a CSV with the columns mmsi, trip and sog, holding the
// WKT of each trip with at most maxDecimals decimals.
func WriteTrips(w io.Writer, trips []*Trip, maxDecimals int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"mmsi", "trip", "sog"}); err != nil {
		return err
	}
	for _, t := range trips {
		path, err := t.Path.EWKT(maxDecimals)
		if err != nil {
			return fmt.Errorf("ais: mmsi %d: %w", t.MMSI, err)
		}
		sog, err := t.SOG.WKT(maxDecimals)
		if err != nil {
			return fmt.Errorf("ais: mmsi %d: %w", t.MMSI, err)
		}
		if err := cw.Write([]string{strconv.FormatInt(t.MMSI, 10), path, sog}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
