// Schema DDL for the slotrack store. All statements are IF NOT EXISTS so
// that opening an already-initialized store is a no-op.
package sqlite

// Entity tables.
const (
	createTeachers = `CREATE TABLE IF NOT EXISTS teachers (
    teacher_id TEXT PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name TEXT NOT NULL,
    email TEXT,
    phone TEXT,
    designation TEXT,
    department TEXT,
    status TEXT NOT NULL DEFAULT 'active',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createSyllabusMaster = `CREATE TABLE IF NOT EXISTS syllabus_master (
    syllabus_id TEXT PRIMARY KEY,
    subject_code TEXT NOT NULL,
    subject_name TEXT NOT NULL,
    year INTEGER NOT NULL,
    paper_number TEXT,
    part TEXT,
    topic_number TEXT,
    topic_name TEXT,
    learning_objective_text TEXT NOT NULL,
    domain_code TEXT,
    domain_full TEXT,
    priority_level TEXT,
    priority_full TEXT,
    competency_level TEXT,
    competency_full TEXT,
    teaching_methods_codes TEXT,
    teaching_methods_full TEXT,
    assessment_methods_codes TEXT,
    assessment_methods_full TEXT,
    assessment_type TEXT,
    assessment_type_full TEXT,
    term TEXT,
    lecture_hours REAL,
    non_lecture_hours_theory REAL,
    non_lecture_hours_practical REAL,
    course_outcome TEXT,
    programme_outcome TEXT,
    integration_codes TEXT,
    integration_full TEXT,
    marks_weightage INTEGER,
    mcq_allowed INTEGER NOT NULL DEFAULT 1,
    saq_allowed INTEGER NOT NULL DEFAULT 1,
    laq_allowed INTEGER NOT NULL DEFAULT 1,
    status TEXT NOT NULL DEFAULT 'active',
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createAssignments = `CREATE TABLE IF NOT EXISTS teacher_subject_assignments (
    assignment_id TEXT PRIMARY KEY,
    teacher_id TEXT NOT NULL,
    subject_code TEXT NOT NULL,
    year INTEGER NOT NULL,
    academic_year TEXT NOT NULL,
    section TEXT,
    assigned_date TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'active',
    FOREIGN KEY (teacher_id) REFERENCES teachers(teacher_id)
);`

	createTeachingDiary = `CREATE TABLE IF NOT EXISTS teaching_diary (
    diary_id TEXT PRIMARY KEY,
    teacher_id TEXT NOT NULL,
    entry_date TEXT NOT NULL,
    term TEXT,
    subject_code TEXT,
    period_number INTEGER,
    remarks TEXT,
    created_at TEXT NOT NULL,
    FOREIGN KEY (teacher_id) REFERENCES teachers(teacher_id)
);`

	createCoverageLog = `CREATE TABLE IF NOT EXISTS syllabus_coverage_log (
    log_id TEXT PRIMARY KEY,
    teacher_id TEXT NOT NULL,
    subject_code TEXT NOT NULL,
    syllabus_id TEXT NOT NULL,
    diary_id TEXT,
    coverage_date TEXT NOT NULL,
    coverage_status TEXT,
    created_at TEXT NOT NULL,
    FOREIGN KEY (teacher_id) REFERENCES teachers(teacher_id),
    FOREIGN KEY (syllabus_id) REFERENCES syllabus_master(syllabus_id),
    FOREIGN KEY (diary_id) REFERENCES teaching_diary(diary_id)
);`

	createPlannedSLOs = `CREATE TABLE IF NOT EXISTS planned_slos (
    plan_id TEXT PRIMARY KEY,
    teacher_id TEXT NOT NULL,
    subject_code TEXT NOT NULL,
    syllabus_id TEXT NOT NULL,
    plan_type TEXT NOT NULL,
    plan_date TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (teacher_id) REFERENCES teachers(teacher_id),
    FOREIGN KEY (syllabus_id) REFERENCES syllabus_master(syllabus_id),
    UNIQUE (teacher_id, syllabus_id, plan_type)
);`
)

// Lookup (classification master) tables. Seeded once, immutable after.
const (
	createDomainMaster = `CREATE TABLE IF NOT EXISTS domain_master (
    domain_code TEXT PRIMARY KEY,
    domain_full TEXT NOT NULL,
    domain_category TEXT,
    display_order INTEGER
);`

	createTeachingMethodsMaster = `CREATE TABLE IF NOT EXISTS teaching_methods_master (
    method_code TEXT PRIMARY KEY,
    method_full TEXT NOT NULL,
    method_category TEXT,
    display_order INTEGER
);`

	createAssessmentMethodsMaster = `CREATE TABLE IF NOT EXISTS assessment_methods_master (
    method_code TEXT PRIMARY KEY,
    method_full TEXT NOT NULL,
    method_category TEXT,
    display_order INTEGER
);`

	createPriorityMaster = `CREATE TABLE IF NOT EXISTS priority_master (
    priority_code TEXT PRIMARY KEY,
    priority_full TEXT NOT NULL,
    display_order INTEGER
);`

	createCompetencyMaster = `CREATE TABLE IF NOT EXISTS competency_master (
    competency_code TEXT PRIMARY KEY,
    competency_full TEXT NOT NULL,
    display_order INTEGER
);`

	createIntegrationMaster = `CREATE TABLE IF NOT EXISTS integration_master (
    integration_code TEXT PRIMARY KEY,
    integration_full TEXT NOT NULL,
    integration_type TEXT,
    display_order INTEGER
);`
)

// Index DDL. The unique coverage index is what makes repeated same-day
// logging an idempotent no-op at the database level.
const (
	idxSyllabusSubject   = `CREATE INDEX IF NOT EXISTS idx_syllabus_subject ON syllabus_master(subject_code, status);`
	idxSyllabusTerm      = `CREATE INDEX IF NOT EXISTS idx_syllabus_term ON syllabus_master(subject_code, term);`
	idxCoverageUnique    = `CREATE UNIQUE INDEX IF NOT EXISTS idx_coverage_unique ON syllabus_coverage_log(teacher_id, syllabus_id, coverage_date);`
	idxCoverageTeacher   = `CREATE INDEX IF NOT EXISTS idx_coverage_teacher ON syllabus_coverage_log(teacher_id, subject_code);`
	idxAssignmentsUnique = `CREATE UNIQUE INDEX IF NOT EXISTS idx_assignments_unique ON teacher_subject_assignments(teacher_id, subject_code, year, academic_year);`
	idxPlansTeacher      = `CREATE INDEX IF NOT EXISTS idx_plans_teacher ON planned_slos(teacher_id, subject_code, plan_type);`
	idxDiaryTeacher      = `CREATE INDEX IF NOT EXISTS idx_diary_teacher ON teaching_diary(teacher_id, entry_date);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createTeachers,
	createSyllabusMaster,
	createAssignments,
	createTeachingDiary,
	createCoverageLog,
	createPlannedSLOs,
	createDomainMaster,
	createTeachingMethodsMaster,
	createAssessmentMethodsMaster,
	createPriorityMaster,
	createCompetencyMaster,
	createIntegrationMaster,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxSyllabusSubject,
	idxSyllabusTerm,
	idxCoverageUnique,
	idxCoverageTeacher,
	idxAssignmentsUnique,
	idxPlansTeacher,
	idxDiaryTeacher,
}
