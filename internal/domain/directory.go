package domain

import "sort"

// AirportRecord is one row of the static airport reference table.
type AirportRecord struct {
	// Code is the IATA airport/city code (e.g., "BER")
	Code string

	// City is the city the airport serves (e.g., "Berlin")
	City string

	// Country is the country name (e.g., "Germany")
	Country string
}

// Directory is the read-only airport/country lookup table. It is loaded once
// at process start and safe for concurrent readers; not-found is a normal,
// non-exceptional outcome callers must check.
type Directory struct {
	byCode    map[string]AirportRecord
	byCountry map[string][]string
}

// NewDirectory builds a Directory from the given records. Later records with
// a duplicate code replace earlier ones.
func NewDirectory(records []AirportRecord) *Directory {
	d := &Directory{
		byCode:    make(map[string]AirportRecord, len(records)),
		byCountry: make(map[string][]string),
	}
	for _, r := range records {
		if _, dup := d.byCode[r.Code]; dup {
			continue
		}
		d.byCode[r.Code] = r
		d.byCountry[r.Country] = append(d.byCountry[r.Country], r.Code)
	}
	for _, codes := range d.byCountry {
		sort.Strings(codes)
	}
	return d
}

// Lookup returns the record for the given IATA code.
func (d *Directory) Lookup(code string) (AirportRecord, bool) {
	r, ok := d.byCode[code]
	return r, ok
}

// CountryOf returns the country of the given IATA code.
func (d *Directory) CountryOf(code string) (string, bool) {
	r, ok := d.byCode[code]
	if !ok {
		return "", false
	}
	return r.Country, true
}

// CityOf returns the city of the given IATA code.
func (d *Directory) CityOf(code string) (string, bool) {
	r, ok := d.byCode[code]
	if !ok {
		return "", false
	}
	return r.City, true
}

// CodesInCountry returns all codes sharing the given code's country,
// excluding the code itself. The result is sorted for deterministic fan-out
// order. An unknown code yields an empty slice.
func (d *Directory) CodesInCountry(code string) []string {
	r, ok := d.byCode[code]
	if !ok {
		return nil
	}
	siblings := d.byCountry[r.Country]
	out := make([]string, 0, len(siblings))
	for _, c := range siblings {
		if c != code {
			out = append(out, c)
		}
	}
	return out
}

// Len returns the number of records in the directory.
func (d *Directory) Len() int {
	return len(d.byCode)
}
