package ingest

// Row is one raw record from the row source, keyed by column name.
type Row map[string]string

// column names as they appear in the qualifying CSV export
const (
	ColSeason                 = "Season"
	ColRound                  = "Round"
	ColCircuitID              = "CircuitID"
	ColPosition               = "Position"
	ColDriverID               = "DriverID"
	ColPermanentNumber        = "PermanentNumber"
	ColCode                   = "Code"
	ColGivenName              = "GivenName"
	ColFamilyName             = "FamilyName"
	ColDateOfBirth            = "DateOfBirth"
	ColNationality            = "Nationality"
	ColConstructorID          = "ConstructorID"
	ColConstructorName        = "ConstructorName"
	ColConstructorNationality = "ConstructorNationality"
	ColQ1                     = "Q1"
	ColQ2                     = "Q2"
	ColQ3                     = "Q3"
)

// Columns lists all consumed column names in canonical order.
var Columns = []string{
	ColSeason, ColRound, ColCircuitID, ColPosition,
	ColDriverID, ColPermanentNumber, ColCode, ColGivenName, ColFamilyName,
	ColDateOfBirth, ColNationality,
	ColConstructorID, ColConstructorName, ColConstructorNationality,
	ColQ1, ColQ2, ColQ3,
}
