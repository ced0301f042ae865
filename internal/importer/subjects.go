package importer

// Subject identifies the curriculum a sheet belongs to.
type Subject struct {
	Code string
	Name string
	Year int
}

// sheetSubjects maps workbook sheet names to subjects. Sheets with names
// outside this table are not curriculum sheets and are ignored.
var sheetSubjects = map[string]Subject{
	"LMS1_KS":   {"AyUG-KS", "Kriya Sharir", 1},
	"LMS1_PV":   {"AyUG-PV", "Padartha Vigyan", 1},
	"LMS1_RS":   {"AyUG-RS", "Rachana Sharir", 1},
	"LMS1_SA1":  {"AyUG-SA1", "Sanskrit", 1},
	"LMS1_AI":   {"AyUG-AI", "Ayurveda Itihas", 1},
	"LMS2_AT":   {"AyUG-AT", "Agad Tantra", 2},
	"LMS2_DG":   {"AyUG-DG", "Dravyaguna", 2},
	"LMS2_RSBK": {"AyUG-RSBK", "Rasashastra & Bhaishajya Kalpana", 2},
	"LMS2_RN":   {"AyUG-RN", "Roga Nidan", 2},
	"LMS2_SA2":  {"AyUG-SA2", "Sanskrit", 2},
	"LMS2_SW":   {"AyUG-SW", "Swasthavritta", 2},
	"LMS3_PK":   {"AyUG-PK", "Prasuti & Stree Roga", 3},
	"LMS3_KB":   {"AyUG-KB", "Kaumarbhritya", 3},
	"LMS3_EM":   {"AyUG-EM", "Emergency Medicine", 3},
	"LMS3_KC":   {"AyUG-KC", "Kayachikitsa", 3},
	"LMS3_PTSR": {"AyUG-PTSR", "Panchakarma & Shalyatantra", 3},
	"LMS3_RMBS": {"AyUG-RMBS", "Research Methodology & Biostatistics", 3},
	"LMS3_SA3":  {"AyUG-SA3", "Sanskrit", 3},
	"LMS3_SL":   {"AyUG-SL", "Shalakya Tantra", 3},
	"LMS3_ST":   {"AyUG-ST", "Shalya Tantra", 3},
}

// SubjectForSheet resolves a sheet name to its subject, reporting whether
// the sheet is a known curriculum sheet.
func SubjectForSheet(name string) (Subject, bool) {
	s, ok := sheetSubjects[name]
	return s, ok
}
