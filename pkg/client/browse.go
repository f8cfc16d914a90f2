package client

import "strings"

// BrowseOptions filters and pages an applicant list
type BrowseOptions struct {
	// Status keeps only applicants with this status; empty keeps all
	Status string
	// Search matches case-insensitively against name, email and school name
	Search string
	// Page is 1-based; PageSize 0 disables paging
	Page     int
	PageSize int
}

// BrowseResult is one page of filtered applicants
type BrowseResult struct {
	Applicants []Applicant
	Total      int
	Page       int
	TotalPages int
	// Counts holds per-status totals over the filtered-by-search set
	Counts map[string]int
}

// Browse filters, searches and pages applicants the way the admin list
// view does
func Browse(applicants []Applicant, opts BrowseOptions) BrowseResult {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	var matched []Applicant
	counts := map[string]int{}
	for _, a := range applicants {
		if search != "" && !matchesSearch(&a, search) {
			continue
		}
		counts[a.Status]++
		if opts.Status != "" && a.Status != opts.Status {
			continue
		}
		matched = append(matched, a)
	}

	result := BrowseResult{
		Total:  len(matched),
		Counts: counts,
	}

	if opts.PageSize <= 0 {
		result.Applicants = matched
		result.Page = 1
		result.TotalPages = 1
		return result
	}

	result.TotalPages = (len(matched) + opts.PageSize - 1) / opts.PageSize
	if result.TotalPages == 0 {
		result.TotalPages = 1
	}

	page := opts.Page
	if page < 1 {
		page = 1
	}
	if page > result.TotalPages {
		page = result.TotalPages
	}
	result.Page = page

	start := (page - 1) * opts.PageSize
	end := start + opts.PageSize
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}
	result.Applicants = matched[start:end]

	return result
}

func matchesSearch(a *Applicant, search string) bool {
	return strings.Contains(strings.ToLower(a.Name), search) ||
		strings.Contains(strings.ToLower(a.Email), search) ||
		strings.Contains(strings.ToLower(a.School.Name), search)
}
