package platform

// DetectBatch classifies a list of URLs in input order and tallies how
// many resolved to a known platform. Individual failures do not exist in
// this model: a bad URL is simply Unknown.
func (r *Resolver) DetectBatch(urls []string) BatchResult {
	out := BatchResult{
		Results: make([]Detection, 0, len(urls)),
		Total:   len(urls),
	}
	for _, u := range urls {
		t := r.Detect(u)
		d := Detection{URL: u, Platform: t, Supported: t != Unknown}
		if d.Supported {
			out.Detected++
		} else {
			out.Unknown++
		}
		out.Results = append(out.Results, d)
	}
	return out
}

// DetectBatch runs a batch detection against the default resolver.
func DetectBatch(urls []string) BatchResult {
	return defaultResolver.DetectBatch(urls)
}
