package models

// ReadingsBundle is everything a device has to download in batched mode:
// new readings of already known patients, referrals issued for older
// readings, and follow-up assessments.
type ReadingsBundle struct {
	Readings  []Reading
	Referrals []Referral
	Followups []Assessment
}

// Total is the number of records in the bundle, the "total" field of the
// streamed payload.
func (b ReadingsBundle) Total() int {
	return len(b.Readings) + len(b.Referrals) + len(b.Followups)
}
