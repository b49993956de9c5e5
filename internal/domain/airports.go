package domain

// DefaultAirports is the built-in airport reference table. It mirrors the
// curated city list the search frontend offers, so every searchable city
// resolves to a country for trip classification and alternate-airport
// fan-out.
var DefaultAirports = []AirportRecord{
	{Code: "BER", City: "Berlin", Country: "Germany"},
	{Code: "MUC", City: "Munich", Country: "Germany"},
	{Code: "FRA", City: "Frankfurt", Country: "Germany"},
	{Code: "NYC", City: "New York", Country: "USA"},
	{Code: "LAX", City: "Los Angeles", Country: "USA"},
	{Code: "CHI", City: "Chicago", Country: "USA"},
	{Code: "TYO", City: "Tokyo", Country: "Japan"},
	{Code: "UKY", City: "Kyoto", Country: "Japan"},
	{Code: "OSA", City: "Osaka", Country: "Japan"},
	{Code: "PAR", City: "Paris", Country: "France"},
	{Code: "LYS", City: "Lyon", Country: "France"},
	{Code: "MRS", City: "Marseille", Country: "France"},
	{Code: "LON", City: "London", Country: "UK"},
	{Code: "MAN", City: "Manchester", Country: "UK"},
	{Code: "LPL", City: "Liverpool", Country: "UK"},
	{Code: "BCN", City: "Barcelona", Country: "Spain"},
	{Code: "MAD", City: "Madrid", Country: "Spain"},
	{Code: "MAA", City: "Chennai", Country: "India"},
	{Code: "BOM", City: "Mumbai", Country: "India"},
	{Code: "DEL", City: "Delhi", Country: "India"},
	{Code: "BLR", City: "Bangalore", Country: "India"},
	{Code: "HYD", City: "Hyderabad", Country: "India"},
	{Code: "CCU", City: "Kolkata", Country: "India"},
	{Code: "PNQ", City: "Pune", Country: "India"},
	{Code: "AMD", City: "Ahmedabad", Country: "India"},
	{Code: "STV", City: "Surat", Country: "India"},
	{Code: "JAI", City: "Jaipur", Country: "India"},
	{Code: "LKO", City: "Lucknow", Country: "India"},
	{Code: "KNU", City: "Kanpur", Country: "India"},
}

// NewDefaultDirectory builds a Directory over the built-in table.
func NewDefaultDirectory() *Directory {
	return NewDirectory(DefaultAirports)
}
