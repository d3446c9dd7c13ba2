package thermo

import "fmt"

//errDecorate is a helper function that asserts that the error
//implements Error and decorates it with the caller's name before returning it.
//if used with an error not implementing Error, it will cause a panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}

//logError is the concrete error for this package. It fulfills Error and LogError.
type logError struct {
	message  string
	filename string //the input file that has problems, or empty string if none.
	deco     []string
	critical bool
}

func (err logError) Error() string {
	return fmt.Sprintf("LAMMPS log file %s error: %s", err.filename, err.message)
}

func (E logError) Decorate(deco string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since E.deco is a slice, and hence a pointer itself.
	if deco != "" {
		E.deco = append(E.deco, deco)
	}
	return E.deco
}

func (err logError) FileName() string { return err.filename }

func (err logError) Format() string { return "LAMMPS log" }

func (err logError) Critical() bool { return err.critical }

const (
	UnableToOpen      = "Unable to open file"
	ReadError         = "Error reading log file"
	KeywordNotFound   = "Keyword not found"
	WrongFormat       = "Wrong format in thermo block"
	UnknownProp       = "Property not present in the thermo block"
	RefColumnNotFound = "Reference column not present in the thermo block"
	NegativeSkip      = "The number of sections to skip must be non-negative"
)
