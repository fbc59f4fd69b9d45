package doctors

// SeedDoctors returns the default directory used when no database is
// configured. The set covers every specialization the classifier can
// emit so local environments still produce doctor recommendations.
func SeedDoctors() []Doctor {
	return []Doctor{
		{Name: "Dr. Asha Rao", Email: "asha.rao@healthbridge.example", Phone: "+1-555-0102", Specialization: "Cardiologist", Hospital: "City Heart Center", Location: "Springfield"},
		{Name: "Dr. Omar Haddad", Email: "omar.haddad@healthbridge.example", Phone: "+1-555-0110", Specialization: "Neurologist", Hospital: "Riverside Medical", Location: "Springfield"},
		{Name: "Dr. Elena Petrova", Email: "elena.petrova@healthbridge.example", Phone: "+1-555-0117", Specialization: "Pulmonologist", Hospital: "Riverside Medical", Location: "Shelbyville"},
		{Name: "Dr. Liam Ortiz", Email: "liam.ortiz@healthbridge.example", Phone: "+1-555-0123", Specialization: "Gastroenterologist", Hospital: "City Care Hospital", Location: "Springfield"},
		{Name: "Dr. Priya Nair", Email: "priya.nair@healthbridge.example", Phone: "+1-555-0131", Specialization: "Orthopedist", Hospital: "Lakeside Clinic", Location: "Shelbyville"},
		{Name: "Dr. Hana Suzuki", Email: "hana.suzuki@healthbridge.example", Phone: "+1-555-0138", Specialization: "Dermatologist", Hospital: "Lakeside Clinic", Location: "Springfield"},
		{Name: "Dr. Marcus Webb", Email: "marcus.webb@healthbridge.example", Phone: "+1-555-0144", Specialization: "Psychiatrist", Hospital: "City Care Hospital", Location: "Shelbyville"},
		{Name: "Dr. Sofia Rossi", Email: "sofia.rossi@healthbridge.example", Phone: "+1-555-0150", Specialization: "Gynecologist", Hospital: "Riverside Medical", Location: "Springfield"},
		{Name: "Dr. Daniel Kim", Email: "daniel.kim@healthbridge.example", Phone: "+1-555-0156", Specialization: "ENT Specialist", Hospital: "City Care Hospital", Location: "Springfield"},
		{Name: "Dr. Amara Okafor", Email: "amara.okafor@healthbridge.example", Phone: "+1-555-0161", Specialization: "Ophthalmologist", Hospital: "Lakeside Clinic", Location: "Shelbyville"},
		{Name: "Dr. Tomas Novak", Email: "tomas.novak@healthbridge.example", Phone: "+1-555-0167", Specialization: "Urologist", Hospital: "Riverside Medical", Location: "Shelbyville"},
		{Name: "Dr. Leila Farhadi", Email: "leila.farhadi@healthbridge.example", Phone: "+1-555-0172", Specialization: "Endocrinologist", Hospital: "City Heart Center", Location: "Springfield"},
		{Name: "Dr. Mira Chen", Email: "mira.chen@healthbridge.example", Phone: "+1-555-0178", Specialization: "General Physician", Hospital: "City Care Hospital", Location: "Springfield"},
		{Name: "Dr. Jonas Weber", Email: "jonas.weber@healthbridge.example", Phone: "+1-555-0183", Specialization: "Family Medicine", Hospital: "Lakeside Clinic", Location: "Shelbyville"},
	}
}
