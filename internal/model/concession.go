package model

// Concession is a theater's mobile-order concession counter.  Zero or
// more concessions exist per theater; when at least one exists it is
// attached to before-show tickets so the app can offer pre-ordering.
//
// Fields:
//  ConcessionID   – unique id of the concession.
//  ConcessionName – display name of the counter.
//  MobileOrderURL – deep link into the mobile-order flow.
//  CautionText    – free-form caution text shown before ordering.
type Concession struct {
	ConcessionID   string // concessions.concession_id
	ConcessionName string // concessions.concession_name
	MobileOrderURL string // concessions.mobile_order_url
	CautionText    string // concessions.caution_text
}
