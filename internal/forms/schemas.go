package forms

// Helpers for declaring schema fields. The Message defaults to
// "<Label> is required" unless the field declares its own wording.

func text(name, label string) FieldSpec {
	return FieldSpec{Name: name, Label: label, Kind: KindText, Message: label + " is required"}
}

func required(name, label string) FieldSpec {
	f := text(name, label)
	f.Required = true
	return f
}

func requiredMsg(name, label, message string) FieldSpec {
	f := required(name, label)
	f.Message = message
	return f
}

func email(name string) FieldSpec {
	return FieldSpec{Name: name, Label: "Email", Kind: KindEmail, Required: true, Message: "Invalid email address"}
}

func enum(name, label string, req bool, allowed ...string) FieldSpec {
	return FieldSpec{
		Name:     name,
		Label:    label,
		Kind:     KindEnum,
		Required: req,
		Allowed:  allowed,
		Message:  label + " is required",
	}
}

var schemas = map[FormType]*Schema{
	FormTypeRequestDemo: {
		Type: FormTypeRequestDemo,
		Fields: []FieldSpec{
			required("companyName", "Company Name"),
			email("email"),
			required("materialsFocus", "Materials Focus"),
		},
	},

	FormTypeStartupPartnership: {
		Type: FormTypeStartupPartnership,
		Fields: []FieldSpec{
			text("companyName", "Company Name"),
			text("website", "Website"),
			text("contactNameTitle", "Contact Name & Title"),
			email("email"),
			text("location", "Location"),
			text("foundedYear", "Founded Year"),
			text("materialsFocus", "Materials Focus"),
			text("technologyDescription", "Technology Description"),
			enum("currentTRLStage", "Current TRL Stage", false,
				"TRL 1-2", "TRL 3", "TRL 4", "TRL 5", "TRL 6", "TRL 7+"),
			text("teamSize", "Team Size"),
			text("fundingStatus", "Funding Status"),
			text("primaryChallenge", "Primary Challenge"),
			text("desiredOutcomes", "Desired Outcomes"),
			text("idealPartnershipTimeline", "Ideal Partnership Timeline"),
			text("howDidYouHear", "How Did You Hear"),
		},
	},

	FormTypeIndustryPartnership: {
		Type: FormTypeIndustryPartnership,
		Fields: []FieldSpec{
			required("companyName", "Company Name"),
			required("contactNameTitle", "Contact Name & Title"),
			email("email"),
			required("industry", "Industry"),
			enum("companySize", "Company Size", true,
				"<50", "50-500", "500-5000", "5000+"),
			required("applicationNeed", "Application Need"),
			requiredMsg("currentMaterialsChallenge", "Current Materials Challenge", "Materials Challenge is required"),
			required("projectTimeline", "Project Timeline"),
			enum("budgetRange", "Budget Range", true,
				"< $50K", "$50K - $250K", "$250K - $1M", "$1M+", "Flexible"),
			enum("decisionMakingProcess", "Decision Making Process", true,
				"I'm the decision maker", "I influence decisions", "I'm researching", "Part of a committee"),
		},
	},

	FormTypeCanadianPartnerships: {
		Type: FormTypeCanadianPartnerships,
		Fields: []FieldSpec{
			required("organizationName", "Organization Name"),
			enum("organizationType", "Organization Type", true,
				"Government - Federal",
				"Government - Provincial",
				"Innovation Centre",
				"Non-Profit",
				"Research Institute",
				"University",
				"Economic Development",
				"Industry Association",
				"Other"),
			required("location", "Location"),
			required("contactName", "Contact Name"),
			requiredMsg("contactTitle", "Contact Title", "Title/Position is required"),
			email("email"),
			text("phone", "Phone"),
			requiredMsg("areaOfInterest", "Area Of Interest", "Area of Collaboration is required"),
			required("partnershipScope", "Partnership Scope"),
			requiredMsg("targetSectors", "Target Sectors", "Target Sectors are required"),
			text("fundingPrograms", "Funding Programs"),
			required("timeline", "Timeline"),
			required("strategicAlignment", "Strategic Alignment"),
			text("existingPartners", "Existing Partners"),
			text("additionalInfo", "Additional Info"),
		},
	},

	FormTypeContactUs: {
		Type: FormTypeContactUs,
		Fields: []FieldSpec{
			required("name", "Name"),
			email("email"),
			text("organization", "Organization"),
			requiredMsg("message", "Message", "Message is required"),
		},
	},
}

// SchemaFor returns the schema registered for the given form type.
func SchemaFor(t FormType) (*Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}
