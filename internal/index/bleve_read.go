package index

import (
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// Search looks for declarations matching the passed keywords in their name or
// owning entity name, returning the slugs of the matches by relevance.
func (b *BleveIndexer) Search(keywords string, page, resultsPerPage int) ([]string, error) {
	splitted := strings.Split(strings.TrimSpace(keywords), " ")

	var nameQueries []query.Query
	for _, keyword := range splitted {
		q := bleve.NewMatchQuery(keyword)
		q.SetField("Name")
		nameQueries = append(nameQueries, q)
	}
	nameCompoundQuery := bleve.NewConjunctionQuery(nameQueries...)
	nameCompoundQuery.SetBoost(10)

	var entityQueries []query.Query
	for _, keyword := range splitted {
		q := bleve.NewMatchQuery(keyword)
		q.SetField("EntityName")
		entityQueries = append(entityQueries, q)
	}
	entityCompoundQuery := bleve.NewConjunctionQuery(entityQueries...)

	compound := bleve.NewDisjunctionQuery(nameCompoundQuery, entityCompoundQuery)
	return b.runQuery(compound, page, resultsPerPage)
}

func (b *BleveIndexer) runQuery(query query.Query, page, resultsPerPage int) ([]string, error) {
	if page < 1 {
		page = 1
	}

	searchOptions := bleve.NewSearchRequestOptions(query, resultsPerPage, (page-1)*resultsPerPage, false)
	searchResult, err := b.idx.Search(searchOptions)
	if err != nil {
		return nil, err
	}

	slugs := make([]string, 0, len(searchResult.Hits))
	for _, hit := range searchResult.Hits {
		slugs = append(slugs, hit.ID)
	}
	return slugs, nil
}
