package catalog

import (
	"strings"

	"github.com/mohammedahmeduddin04/DocAI/internal/domain"
)

// Doctors is the static practitioner registry.
var Doctors = []domain.Doctor{
	{ID: "1", Name: "Dr. Rajesh Kumar", Specialty: "General Physician", Experience: 15, Rating: 4.8, Reviews: 1245, Hospital: "Apollo Hospitals", Location: "Jubilee Hills, Hyderabad", Fee: 600},
	{ID: "2", Name: "Dr. Sunita Reddy", Specialty: "General Physician", Experience: 12, Rating: 4.7, Reviews: 987, Hospital: "Care Hospitals", Location: "Banjara Hills, Hyderabad", Fee: 550},
	{ID: "3", Name: "Dr. Arvind Swami", Specialty: "Dermatologist", Experience: 10, Rating: 4.6, Reviews: 450, Hospital: "Skin Clinic Plus", Location: "Kukatpally, Hyderabad", Fee: 800},
	{ID: "4", Name: "Dr. Kavita Rao", Specialty: "Pediatrician", Experience: 20, Rating: 4.9, Reviews: 2100, Hospital: "Continental Hospitals", Location: "Gachibowli, Hyderabad", Fee: 800},
	{ID: "5", Name: "Dr. Sanjay Gupta", Specialty: "Orthopedic Surgeon", Experience: 18, Rating: 4.8, Reviews: 1560, Hospital: "KIMS Hospitals", Location: "Secunderabad", Fee: 1000},
	{ID: "6", Name: "Dr. Meera Nair", Specialty: "Gynecologist", Experience: 14, Rating: 4.7, Reviews: 1120, Hospital: "Rainbow Children's Hospital", Location: "Banjara Hills", Fee: 700},
	{ID: "7", Name: "Dr. Rohan Mehra", Specialty: "Psychiatrist", Experience: 8, Rating: 4.5, Reviews: 320, Hospital: "Mind Wellness Center", Location: "Madhapur, Hyderabad", Fee: 1200},
	{ID: "8", Name: "Dr. Priya Sharma", Specialty: "Ophthalmologist", Experience: 11, Rating: 4.7, Reviews: 890, Hospital: "LV Prasad Eye Institute", Location: "Banjara Hills", Fee: 900},
	{ID: "9", Name: "Dr. Naveen Chandra", Specialty: "ENT Specialist", Experience: 16, Rating: 4.8, Reviews: 760, Hospital: "Apollo Ent Center", Location: "Jubilee Hills", Fee: 750},
	{ID: "10", Name: "Dr. Shalini Varma", Specialty: "Endocrinologist", Experience: 13, Rating: 4.6, Reviews: 540, Hospital: "Care Hospitals", Location: "Banjara Hills", Fee: 1100},
	{ID: "11", Name: "Dr. Manoj Bajpayee", Specialty: "Oncologist", Experience: 22, Rating: 4.9, Reviews: 1980, Hospital: "Basavatarakam Cancer Hospital", Location: "Banjara Hills", Fee: 1500},
	{ID: "12", Name: "Dr. Vikram Singh", Specialty: "Cardiologist", Experience: 25, Rating: 4.9, Reviews: 2134, Hospital: "Apollo Hospitals", Location: "Jubilee Hills, Hyderabad", Fee: 1500},
	{ID: "13", Name: "Dr. Deepa Malik", Specialty: "Physiotherapist", Experience: 7, Rating: 4.8, Reviews: 210, Hospital: "Rehab Plus", Location: "Gachibowli", Fee: 500},
	{ID: "14", Name: "Dr. Amit Trivedi", Specialty: "Urologist", Experience: 19, Rating: 4.7, Reviews: 670, Hospital: "Yashoda Hospitals", Location: "Somajiguda", Fee: 1000},
	{ID: "15", Name: "Dr. Sneha George", Specialty: "Neurologist", Experience: 15, Rating: 4.8, Reviews: 840, Hospital: "Sunshine Hospitals", Location: "Secunderabad", Fee: 1300},
	{ID: "16", Name: "Dr. Karthik R.", Specialty: "Pulmonologist", Experience: 12, Rating: 4.6, Reviews: 430, Hospital: "Medicover Hospitals", Location: "Hitech City", Fee: 900},
	{ID: "17", Name: "Dr. Anjali Patil", Specialty: "Dentist", Experience: 9, Rating: 4.5, Reviews: 510, Hospital: "Clove Dental", Location: "Kondapur", Fee: 400},
	{ID: "18", Name: "Dr. Suresh Raina", Specialty: "Gastroenterologist", Experience: 21, Rating: 4.8, Reviews: 1200, Hospital: "AIG Hospitals", Location: "Gachibowli", Fee: 1200},
	{ID: "19", Name: "Dr. Vidya Balan", Specialty: "Rheumatologist", Experience: 17, Rating: 4.7, Reviews: 310, Hospital: "Star Hospitals", Location: "Banjara Hills", Fee: 1100},
	{ID: "20", Name: "Dr. Farhan Akhtar", Specialty: "Nephrologist", Experience: 14, Rating: 4.6, Reviews: 290, Hospital: "Kamineni Hospitals", Location: "L.B. Nagar", Fee: 950},
	{ID: "21", Name: "Dr. Ranbir Kapoor", Specialty: "Oncologist", Experience: 11, Rating: 4.7, Reviews: 540, Hospital: "Tata Memorial", Location: "Mumbai", Fee: 2000},
	{ID: "22", Name: "Dr. Alia Bhatt", Specialty: "Pediatrician", Experience: 8, Rating: 4.8, Reviews: 720, Hospital: "Reliance Hospital", Location: "Mumbai", Fee: 1200},
	{ID: "23", Name: "Dr. Shraddha Das", Specialty: "Dermatologist", Experience: 13, Rating: 4.6, Reviews: 410, Hospital: "Kaya Clinic", Location: "Pune", Fee: 900},
	{ID: "24", Name: "Dr. Vijay Deverakonda", Specialty: "Psychiatrist", Experience: 10, Rating: 4.5, Reviews: 180, Hospital: "Care Hospitals", Location: "Hyderabad", Fee: 1100},
	{ID: "25", Name: "Dr. Rashmika Mandanna", Specialty: "Gynecologist", Experience: 15, Rating: 4.9, Reviews: 1400, Hospital: "Fernandez Hospital", Location: "Hyderabad", Fee: 1000},
}

// MedicalTests is the static diagnostics registry.
var MedicalTests = []domain.MedicalTest{
	{
		ID: "1", Name: "Complete Blood Count (CBC)", Category: "Blood Test", Price: 350, Duration: "4 hours", Hospital: "PathLabs",
		Description:     "Evaluates overall health and detects a wide range of disorders, including anemia, infection, and leukemia.",
		ClinicalUtility: "Measures the concentration of white cells, red cells, and platelets. Abnormal counts may indicate systemic inflammation, bone marrow issues, or immune response to viral pathogens.",
	},
	{
		ID: "2", Name: "Lipid Profile", Category: "Blood Test", Price: 600, Duration: "6 hours", Hospital: "Dr. Lal PathLabs",
		Description:     "Measures cholesterol and triglyceride levels to assess cardiovascular risk.",
		ClinicalUtility: "Quantifies HDL (good), LDL (bad), and VLDL cholesterol. High LDL levels lead to arterial plaque buildup (atherosclerosis), which is a leading precursor to Myocardial Infarction (heart attack).",
	},
	{
		ID: "3", Name: "HbA1c (Diabetes)", Category: "Blood Test", Price: 450, Duration: "8 hours", Hospital: "Apollo Diagnostics",
		Description:     "Measures average blood sugar levels over the past three months.",
		ClinicalUtility: "Tracks the percentage of hemoglobin coated with sugar (glycated hemoglobin). It provides a more stable metric for long-term glycemic control than daily finger-prick tests.",
	},
	{
		ID: "4", Name: "Liver Function Test (LFT)", Category: "Blood Test", Price: 800, Duration: "5 hours", Hospital: "Vijaya Diagnostics",
		Description:     "Assesses liver health by measuring proteins, liver enzymes, and bilirubin.",
		ClinicalUtility: "Detects liver damage or inflammation. Elevated ALT and AST enzymes suggest hepatocytes (liver cells) are rupturing, signaling hepatitis, cirrhosis, or drug toxicity.",
	},
	{
		ID: "5", Name: "Kidney Function Test (KFT)", Category: "Blood Test", Price: 750, Duration: "5 hours", Hospital: "Tenet Diagnostics",
		Description:     "Evaluates how well your kidneys are filtering waste from your blood.",
		ClinicalUtility: "Checks levels of Urea and Creatinine. High creatinine indicates a lower Glomerular Filtration Rate (GFR), which means the kidneys are struggling to clear metabolic waste.",
	},
	{
		ID: "6", Name: "MRI Brain (Contrast)", Category: "Imaging", Price: 8500, Duration: "1 hour", Hospital: "KIMS Hospital",
		Description:     "High-resolution imaging used to visualize brain structure and detect tumors or lesions.",
		ClinicalUtility: "Uses powerful magnets and radio waves to map soft tissue. Vital for diagnosing multiple sclerosis, strokes, and intra-cranial pressure changes often reported as severe headaches.",
	},
	{
		ID: "7", Name: "Cardiac Troponin T", Category: "Blood Test", Price: 1200, Duration: "2 hours", Hospital: "Apollo Hospitals",
		Description:     "The gold standard test for detecting heart muscle damage.",
		ClinicalUtility: "Troponin is a protein found in heart muscle. When the heart is damaged (e.g., during a heart attack), troponin is released into the bloodstream. Even trace amounts can signal a cardiac emergency.",
	},
	{
		ID: "8", Name: "Vitamin D3 (25-Hydroxy)", Category: "Vitamin", Price: 1400, Duration: "24 hours", Hospital: "Tenet Diagnostics",
		Description:     "Measures the level of Vitamin D in the blood, essential for bone health.",
		ClinicalUtility: "Essential for calcium absorption and immune system regulation. Deficiencies are linked to osteopenia and increased susceptibility to respiratory infections.",
	},
	{
		ID: "9", Name: "Chest X-Ray (PA View)", Category: "Imaging", Price: 450, Duration: "15 mins", Hospital: "Yashoda Hospitals",
		Description:     "Visualizes the lungs, heart, and chest wall.",
		ClinicalUtility: "Primary tool for detecting pneumonia, pleural effusion, or an enlarged heart (cardiomegaly). Identifies fluid buildup in the pulmonary alveolar sacs.",
	},
	{
		ID: "10", Name: "D-Dimer Test", Category: "Blood Test", Price: 1800, Duration: "4 hours", Hospital: "Medall Healthcare",
		Description:     "Used to rule out blood clots (thrombosis).",
		ClinicalUtility: "Measures a substance released when a blood clot dissolves. High levels can indicate Deep Vein Thrombosis (DVT) or Pulmonary Embolism, which are critical vascular events.",
	},
	{
		ID: "11", Name: "Thyroid Profile (T3, T4, TSH)", Category: "Hormone", Price: 550, Duration: "24 hours", Hospital: "SRL Diagnostics",
		Description:     "Comprehensive screen for hypo or hyperthyroidism.",
		ClinicalUtility: "TSH (Thyroid Stimulating Hormone) is the primary indicator. High TSH suggests the pituitary is overworking to stimulate an underactive thyroid (hypothyroidism).",
	},
	{
		ID: "12", Name: "Double Marker Test", Category: "Pregnancy", Price: 2800, Duration: "3 days", Hospital: "Fernandez Hospital",
		Description:     "Screening for chromosomal abnormalities in the first trimester.",
		ClinicalUtility: "Measures PAPP-A and Free Beta hCG. Combined with ultrasound data, it calculates the risk of Down Syndrome and other trisomies.",
	},
	{
		ID: "13", Name: "CT Abdomen & Pelvis", Category: "Imaging", Price: 5500, Duration: "30 mins", Hospital: "Star Hospitals",
		Description:     "Detailed view of abdominal organs like liver, spleen, and pancreas.",
		ClinicalUtility: "Identifies appendicitis, kidney stones, and bowel obstructions. Far more sensitive than ultrasound for detecting small calcifications in the urinary tract.",
	},
	{
		ID: "14", Name: "Serum Electrolytes (Na, K, Cl)", Category: "Blood Test", Price: 400, Duration: "3 hours", Hospital: "Local Diagnostics",
		Description:     "Measures the balance of salts in your blood.",
		ClinicalUtility: "Potassium levels are critical; even slight deviations can cause fatal cardiac arrhythmias. Sodium levels affect brain function and hydration status.",
	},
	{
		ID: "15", Name: "ESR (Westergren)", Category: "Blood Test", Price: 150, Duration: "2 hours", Hospital: "PathLabs",
		Description:     "A non-specific marker for systemic inflammation.",
		ClinicalUtility: "Measures how quickly red blood cells sink to the bottom of a tube. Rapid sinking indicates heavy proteins in the blood, usually a sign of chronic infection or autoimmune flare-ups.",
	},
}

// Vaccines is the static immunization registry.
var Vaccines = []domain.Vaccine{
	{ID: "1", Name: "COVID-19 Primary (Covishield)", Category: "Viral", Price: 0, AgeEligibility: "18+ years", Hospital: "Government Health Centers"},
	{ID: "2", Name: "COVID-19 Booster (Corbevax)", Category: "Viral", Price: 0, AgeEligibility: "18+ years", Hospital: "Government Health Centers"},
	{ID: "3", Name: "Hepatitis B", Category: "Viral", Price: 300, AgeEligibility: "Infants, High-risk Adults", Hospital: "Apollo Hospitals"},
	{ID: "4", Name: "BCG (Tuberculosis)", Category: "Bacterial", Price: 0, AgeEligibility: "Newborns", Hospital: "Public Health Clinics"},
	{ID: "5", Name: "MMR (Measles, Mumps, Rubella)", Category: "Viral", Price: 600, AgeEligibility: "Children (9 months+)", Hospital: "Rainbow Children's Hospital"},
	{ID: "6", Name: "Polio (IPV/OPV)", Category: "Viral", Price: 0, AgeEligibility: "Children (Birth to 5 yrs)", Hospital: "Pulse Polio Centers"},
	{ID: "7", Name: "Influenza (Flu) - Quadrivalent", Category: "Viral", Price: 500, AgeEligibility: "6 months+", Hospital: "Apollo Hospitals, Jubilee Hills"},
	{ID: "8", Name: "HPV (Cervical Cancer)", Category: "Viral", Price: 3500, AgeEligibility: "Girls & Boys (9-26 yrs)", Hospital: "Continental Hospitals"},
	{ID: "9", Name: "Chickenpox (Varicella)", Category: "Viral", Price: 1500, AgeEligibility: "Children & Adults", Hospital: "Yashoda Hospitals"},
	{ID: "10", Name: "Typhoid Conjugate", Category: "Bacterial", Price: 1200, AgeEligibility: "Children (6 months+) & Adults", Hospital: "KIMS Hospitals"},
}

// Cities is the static surveillance dashboard dataset.
var Cities = []domain.CityData{
	{
		Name: "Mumbai", Lat: 19.0760, Lng: 72.8777, Predictions: 156, Risk: domain.RiskCritical,
		HazardType: "Viral Outbreak (Dengue)", PopAtRisk: "2.4M", HealthcareLoad: 88,
		EconomicImpact: "₹ 350 Cr. Est.", ProjectedGrowth: "14% WoW",
	},
	{
		Name: "Delhi", Lat: 28.6139, Lng: 77.2090, Predictions: 42, Risk: domain.RiskHigh,
		HazardType: "Respiratory Distress (AQI)", PopAtRisk: "1.8M", HealthcareLoad: 65,
		EconomicImpact: "₹ 230 Cr. Est.", ProjectedGrowth: "8% WoW",
	},
	{
		Name: "Hyderabad", Lat: 17.3850, Lng: 78.4867, Predictions: 12, Risk: domain.RiskLow,
		HazardType: "Seasonal Influenza", PopAtRisk: "400k", HealthcareLoad: 22,
		EconomicImpact: "₹ 35 Cr. Est.", ProjectedGrowth: "2% WoW",
	},
}

// FindCity looks up a surveillance city by name, case-insensitively.
func FindCity(name string) (domain.CityData, bool) {
	for _, c := range Cities {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return domain.CityData{}, false
}
