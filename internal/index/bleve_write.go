package index

// Add indexes a declaration, replacing any previous entry with the same slug
func (b *BleveIndexer) Add(slug, name, entityName string) error {
	return b.idx.Index(slug, Entry{Slug: slug, Name: name, EntityName: entityName})
}
