package core

// Classify assigns a classification chain to a trial balance item after
// validating it against the chart. The item is modified in place and any
// pending suggestion for it is cleared.
func Classify(chart *Chart, item *TrialBalanceItem, majorCode, minorCode, groupingCode string) error {
	if err := chart.ValidateChain(majorCode, minorCode, groupingCode); err != nil {
		return err
	}
	item.MajorHeadCode = majorCode
	item.MinorHeadCode = minorCode
	item.GroupingCode = groupingCode
	item.IsMapped = true
	item.SuggestedMajorHeadCode = ""
	item.SuggestedMinorHeadCode = ""
	item.SuggestedGroupingCode = ""
	item.SuggestionConfidence = 0
	return nil
}

// Unclassify removes an item's classification, returning it to the
// unmapped pool.
func Unclassify(item *TrialBalanceItem) {
	item.MajorHeadCode = ""
	item.MinorHeadCode = ""
	item.GroupingCode = ""
	item.NoteLineItemID = ""
	item.IsMapped = false
}

// AcceptSuggestion commits an item's pending suggestion as its
// classification. It fails with *InconsistentHierarchyError if the
// suggested chain does not hold in the chart, and leaves the item
// untouched in that case.
func AcceptSuggestion(chart *Chart, item *TrialBalanceItem) error {
	return Classify(chart, item,
		item.SuggestedMajorHeadCode,
		item.SuggestedMinorHeadCode,
		item.SuggestedGroupingCode)
}
