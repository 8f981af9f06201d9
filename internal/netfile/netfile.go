package netfile

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hyperpath/network"
)

// csvHeader is the fixed column layout of CSV link tables.
var csvHeader = []string{"id", "from", "to", "kind", "cost", "frequency"}

// Data is a decoded file: the frozen network and its (possibly empty) demand.
type Data struct {
	Network *network.Network
	Demand  map[string]float64
}

// Read decodes r in the given format.
// Decoding errors are returned as "decode: ..."; model violations keep their
// network sentinels (ErrInvalidNetwork, ErrInvalidCost).
func Read(r io.Reader, f Format) (*Data, error) {
	var doc document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case FormatTOML:
		if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
	case FormatCSV:
		links, err := readCSV(r)
		if err != nil {
			return nil, err
		}
		doc.Links = links
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}

	net, err := doc.build()
	if err != nil {
		return nil, err
	}
	if doc.Demand == nil {
		doc.Demand = map[string]float64{}
	}

	return &Data{Network: net, Demand: doc.Demand}, nil
}

// Load opens path, infers its format from the extension and decodes it.
func Load(path string) (*Data, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	d, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Write encodes net and demand in the given format. CSV drops node roles,
// isolated nodes and demand.
func Write(w io.Writer, f Format, net *network.Network, demand map[string]float64) error {
	doc := fromNetwork(net, demand)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	case FormatCSV:
		return writeCSV(w, doc.Links)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// readCSV parses a link table. The header row is required.
func readCSV(r io.Reader) ([]linkRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(csvHeader)
	cr.TrimLeadingSpace = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("decode: empty CSV")
	}
	for i, col := range csvHeader {
		if rows[0][i] != col {
			return nil, fmt.Errorf("decode: column %d is %q, want %q", i+1, rows[0][i], col)
		}
	}

	out := make([]linkRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec := linkRecord{ID: row[0], From: row[1], To: row[2], Kind: row[3]}
		if rec.Cost, err = strconv.ParseFloat(row[4], 64); err != nil {
			return nil, fmt.Errorf("decode: row %d: cost: %w", n+2, err)
		}
		if row[5] != "" {
			if rec.Frequency, err = strconv.ParseFloat(row[5], 64); err != nil {
				return nil, fmt.Errorf("decode: row %d: frequency: %w", n+2, err)
			}
		}
		out = append(out, rec)
	}

	return out, nil
}

func writeCSV(w io.Writer, links []linkRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, l := range links {
		freq := ""
		if l.Kind == network.KindLine.String() {
			freq = strconv.FormatFloat(l.Frequency, 'g', -1, 64)
		}
		row := []string{l.ID, l.From, l.To, l.Kind, strconv.FormatFloat(l.Cost, 'g', -1, 64), freq}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
