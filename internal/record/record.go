package record

// Record is one product's functional-claim assessment as served by the API.
// Values are treated as opaque text.
type Record struct {
	NotificationNumber      string `json:"notificationNumber" yaml:"notificationNumber"`
	ProductName             string `json:"productName" yaml:"productName"`
	NotifierName            string `json:"notifierName" yaml:"notifierName"`
	FunctionalityToDisplay  string `json:"functionalityToDisplay" yaml:"functionalityToDisplay"`
	Assessment              string `json:"assessment" yaml:"assessment"`
	GeneralReviewOfEvidence string `json:"generalReviewOfEvidence" yaml:"generalReviewOfEvidence"`
}

// Field is a labelled value used by the detail renderers.
type Field struct {
	Label string
	Value string
}

// Empty returns the sentinel used when no record is selected.
func Empty() Record {
	return Record{}
}

// IsEmpty reports whether every field is blank.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// Fields returns the record's values in detail-dialog order.
func (r Record) Fields() []Field {
	return []Field{
		{Label: "届出番号", Value: r.NotificationNumber},
		{Label: "商品名", Value: r.ProductName},
		{Label: "届出者名", Value: r.NotifierName},
		{Label: "表示しようとする機能性", Value: r.FunctionalityToDisplay},
		{Label: "ASCON 総合評価判定", Value: r.Assessment},
		{Label: "論文採用の根拠/機能性エビデンスの総評", Value: r.GeneralReviewOfEvidence},
	}
}

// Clone produces a shallow copy of the provided records.
func Clone(records []Record) []Record {
	dup := make([]Record, len(records))
	copy(dup, records)
	return dup
}
