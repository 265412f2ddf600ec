package metrics

func (m *Metrics) RecordCartToggle(result string) {
	m.safeExecute("RecordCartToggle", func() {
		m.CartTogglesTotal.WithLabelValues(result).Inc()
	})
}

func (m *Metrics) RecordCheckout(items int) {
	m.safeExecute("RecordCheckout", func() {
		m.CheckoutsTotal.Inc()
		m.CheckedOutItemsTotal.Add(float64(items))
	})
}

func (m *Metrics) RecordReview(result string) {
	m.safeExecute("RecordReview", func() {
		m.ReviewsTotal.WithLabelValues(result).Inc()
	})
}

func (m *Metrics) RecordPurge(table string, rows int64) {
	m.safeExecute("RecordPurge", func() {
		m.PurgedRowsTotal.WithLabelValues(table).Add(float64(rows))
	})
}
