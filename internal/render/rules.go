package render

// Default rulesets per endpoint. Each one cuts the back edge of the
// camper <-> signup <-> activity cycle so responses are finite, and the list
// rules drop signup collections entirely to keep list payloads flat.
var (
	// CamperDetail renders a camper with its signups; each signup keeps its
	// activity but drops the camper back-reference and the activity's own
	// signups collection.
	CamperDetail = NewRuleset("signups.camper", "signups.activity.signups")

	// ActivityDetail is symmetric to CamperDetail.
	ActivityDetail = NewRuleset("signups.activity", "signups.camper.signups")

	// SignupDetail renders a signup with both its camper and activity, each
	// stripped of their signups collections.
	SignupDetail = NewRuleset("camper.signups", "activity.signups")

	// ScalarOnly suppresses relationship collections entirely (list endpoints).
	ScalarOnly = NewRuleset("signups", "camper", "activity")
)
