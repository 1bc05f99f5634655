package form

// AddEvidence appends an empty evidence slot for the user to fill in
func (d *Draft) AddEvidence() {
	d.EvidenceURLs = append(d.EvidenceURLs, "")
}

// EditEvidence replaces the evidence entry at index. It reports false when
// the index is out of range.
func (d *Draft) EditEvidence(index int, value string) bool {
	if index < 0 || index >= len(d.EvidenceURLs) {
		return false
	}
	d.EvidenceURLs[index] = value
	return true
}

// RemoveEvidence deletes the evidence entry at index. It reports false when
// the index is out of range.
func (d *Draft) RemoveEvidence(index int) bool {
	if index < 0 || index >= len(d.EvidenceURLs) {
		return false
	}
	d.EvidenceURLs = append(d.EvidenceURLs[:index], d.EvidenceURLs[index+1:]...)
	return true
}

// ApplyScreenshot records a captured screenshot. There is one screenshot
// slot per draft: the url replaces ScreenshotURL and joins the evidence list
// unless already present. A non-empty fieldID also stores the url as that
// screenshot field's value.
func (d *Draft) ApplyScreenshot(url, fieldID string) {
	if url == "" {
		return
	}
	d.ScreenshotURL = url
	if fieldID != "" {
		d.SetField(fieldID, url)
	}
	if !contains(d.EvidenceURLs, url) {
		d.EvidenceURLs = append(d.EvidenceURLs, url)
	}
}

// Attachments returns the urls sent with the report: every non-empty
// evidence entry followed by the screenshot, de-duplicated in first-seen order
func (d *Draft) Attachments() []string {
	out := []string{}
	for _, u := range d.EvidenceURLs {
		if u != "" && !contains(out, u) {
			out = append(out, u)
		}
	}
	if d.ScreenshotURL != "" && !contains(out, d.ScreenshotURL) {
		out = append(out, d.ScreenshotURL)
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
