// Lookup table seeding. The classification masters carry the NCISM
// abbreviation sets; they are reference data, written once and never
// modified afterwards.
package sqlite

import (
	"database/sql"
	"fmt"
)

type lookupRow struct {
	code     string
	full     string
	category string
	order    int
}

// Domain master: Bloom's taxonomy cognitive/psychomotor/affective codes.
var domainSeed = []lookupRow{
	{"CK", "Cognitive / Knowledge", "Cognitive", 1},
	{"CC", "Cognitive / Comprehension", "Cognitive", 2},
	{"CAP", "Cognitive / Application", "Cognitive", 3},
	{"CAN", "Cognitive / Analysis", "Cognitive", 4},
	{"CS", "Cognitive / Synthesis", "Cognitive", 5},
	{"CE", "Cognitive / Evaluation", "Cognitive", 6},
	{"PSY-PER", "Psychomotor / Perception", "Psychomotor", 7},
	{"PSY-SET", "Psychomotor / Set", "Psychomotor", 8},
	{"PSY-GUD", "Psychomotor / Guided response", "Psychomotor", 9},
	{"PSY-MEC", "Psychomotor / Mechanism", "Psychomotor", 10},
	{"PSY-COR", "Psychomotor / Complex Overt Response", "Psychomotor", 11},
	{"PSY-ADT", "Psychomotor / Adaptation", "Psychomotor", 12},
	{"PSY-ORG", "Psychomotor / Origination", "Psychomotor", 13},
	{"AFT-REC", "Affective / Receiving", "Affective", 14},
	{"AFT-RES", "Affective / Responding", "Affective", 15},
	{"AFT-VAL", "Affective / Valuing", "Affective", 16},
	{"AFT-SET", "Affective / Organization", "Affective", 17},
	{"AFT-CHR", "Affective / Characterization", "Affective", 18},
}

var teachingMethodSeed = []lookupRow{
	{"L", "Lecture", "Lecture-Based", 1},
	{"DIS", "Discussions", "Discussion & Group", 2},
	{"PBL", "Problem-Based Learning", "Active Learning", 3},
	{"CBL", "Case-Based Learning", "Active Learning", 4},
	{"D", "Demonstration", "Practical & Clinical", 5},
	{"TUT", "Tutorial", "Discussion & Group", 6},
	{"SY", "Symposium", "Discussion & Group", 7},
	{"SIM", "Simulation", "Student-Centered", 8},
	{"RP", "Role Plays", "Student-Centered", 9},
	{"SDL", "Self-directed learning", "Student-Centered", 10},
	{"FC", "Flipped Classroom", "Student-Centered", 11},
	{"BS", "Brainstorming", "Discussion & Group", 12},
	{"TPW", "Team Project Work", "Student-Centered", 13},
	{"PER", "Presentations", "Discussion & Group", 14},
	{"W", "Workshops", "Other Methods", 15},
	{"FV", "Field Visit", "Other Methods", 16},
	{"REC", "Recitation", "Other Methods", 17},
	{"D-BED", "Demonstration Bedside", "Practical & Clinical", 18},
	{"ECE", "Early Clinical Exposure", "Practical & Clinical", 19},
	{"L&GD", "Lecture & Group Discussion", "Lecture-Based", 20},
}

var assessmentMethodSeed = []lookupRow{
	{"T-MEQs", "Theory MEQs (Modified Essay Questions)", "Theory", 1},
	{"VV-Viva", "Viva", "General", 2},
	{"OSPE", "Observed Structured Practical Examination", "Clinical", 3},
	{"DOPS", "Direct observation of procedural skills", "Clinical", 4},
	{"P-VIVA", "Practical Viva", "Practical", 5},
	{"SA", "Self-assessment", "Other", 6},
	{"T-CS", "Theory case study", "Theory", 7},
	{"OSCE", "Observed Structured Clinical Examination", "Clinical", 8},
	{"Mini-CEX", "Mini Clinical Evaluation Exercise", "Clinical", 9},
	{"CBA", "Case Based Assessment", "Other", 10},
	{"P-PRF", "Practical Performance", "Practical", 11},
	{"T-OBT", "Theory open book test", "Theory", 12},
}

var prioritySeed = []lookupRow{
	{code: "Mk", full: "Must know", order: 1},
	{code: "Dk", full: "Desirable to know", order: 2},
	{code: "Nk", full: "Nice to know", order: 3},
}

var competencySeed = []lookupRow{
	{code: "K", full: "Knows", order: 1},
	{code: "Kh", full: "Knows How", order: 2},
	{code: "Sh", full: "Shows How", order: 3},
	{code: "D", full: "Does", order: 4},
}

var integrationSeed = []lookupRow{
	{"H-RS", "Rachana Sharir", "Horizontal", 1},
	{"V-KC", "Kayachikitsa", "Vertical", 2},
	{"H-DG", "Dravyaguna", "Horizontal", 3},
	{"V-RN", "Roga Nidana", "Vertical", 4},
	{"H-SW", "Swasthavritta", "Horizontal", 5},
	{"V-KS", "Kriya Sharir", "Vertical", 6},
}

// seedLookupTables populates the classification masters on first run.
// Seeding is skipped entirely when the domain master already has rows, so
// repeated Opens leave row counts unchanged.
func seedLookupTables(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM domain_master").Scan(&count); err != nil {
		return fmt.Errorf("counting domain master: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer tx.Rollback()

	fourCol := func(table, stmt string, rows []lookupRow) error {
		for _, r := range rows {
			if _, err := tx.Exec(stmt, r.code, r.full, r.category, r.order); err != nil {
				return fmt.Errorf("seeding %s %s: %w", table, r.code, err)
			}
		}
		return nil
	}

	if err := fourCol("domain_master",
		"INSERT OR IGNORE INTO domain_master (domain_code, domain_full, domain_category, display_order) VALUES (?, ?, ?, ?)",
		domainSeed); err != nil {
		return err
	}
	if err := fourCol("teaching_methods_master",
		"INSERT OR IGNORE INTO teaching_methods_master (method_code, method_full, method_category, display_order) VALUES (?, ?, ?, ?)",
		teachingMethodSeed); err != nil {
		return err
	}
	if err := fourCol("assessment_methods_master",
		"INSERT OR IGNORE INTO assessment_methods_master (method_code, method_full, method_category, display_order) VALUES (?, ?, ?, ?)",
		assessmentMethodSeed); err != nil {
		return err
	}
	if err := fourCol("integration_master",
		"INSERT OR IGNORE INTO integration_master (integration_code, integration_full, integration_type, display_order) VALUES (?, ?, ?, ?)",
		integrationSeed); err != nil {
		return err
	}

	for _, r := range prioritySeed {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO priority_master (priority_code, priority_full, display_order) VALUES (?, ?, ?)",
			r.code, r.full, r.order,
		); err != nil {
			return fmt.Errorf("seeding priority_master %s: %w", r.code, err)
		}
	}
	for _, r := range competencySeed {
		if _, err := tx.Exec(
			"INSERT OR IGNORE INTO competency_master (competency_code, competency_full, display_order) VALUES (?, ?, ?)",
			r.code, r.full, r.order,
		); err != nil {
			return fmt.Errorf("seeding competency_master %s: %w", r.code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed transaction: %w", err)
	}
	return nil
}
