package index

import (
	"log"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/custom"
	"github.com/blevesearch/bleve/v2/analysis/char/asciifolding"
	"github.com/blevesearch/bleve/v2/analysis/token/lowercase"
	"github.com/blevesearch/bleve/v2/analysis/tokenizer/unicode"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Entry is the indexable projection of a declaration.
type Entry struct {
	Slug       string
	Name       string
	EntityName string
}

func (e Entry) BleveType() string {
	return "declaration"
}

type BleveIndexer struct {
	idx bleve.Index
}

// NewBleve creates a new BleveIndexer instance around an already opened index
func NewBleve(index bleve.Index) *BleveIndexer {
	return &BleveIndexer{index}
}

func Mapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()

	err := indexMapping.AddCustomAnalyzer("declaration",
		map[string]interface{}{
			"type": custom.Name,
			"char_filters": []string{
				asciifolding.Name,
			},
			"tokenizer": unicode.Name,
			"token_filters": []string{
				lowercase.Name,
			},
		})
	if err != nil {
		log.Fatal(err)
	}
	indexMapping.DefaultAnalyzer = "declaration"
	slugFieldMapping := bleve.NewKeywordFieldMapping()
	indexMapping.DefaultMapping.AddFieldMappingsAt("Slug", slugFieldMapping)

	return indexMapping
}

func (b *BleveIndexer) Close() error {
	return b.idx.Close()
}
