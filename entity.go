package depot

import "github.com/TheBitDrifter/mask"

// CreateEntity allocates the next id and grows every column by one empty
// slot. It panics with BorrowConflictError if any column has a live view.
func (w *world) CreateEntity() EntityID {
	for _, col := range w.columns {
		if err := col.flag().conflict(col.Name(), BorrowWrite); err != nil {
			w.logger.Error().Err(err).Int("entity", w.entitiesCount).Msg("entity creation blocked by live view")
			panic(err)
		}
	}
	id := EntityID(w.entitiesCount)
	for _, col := range w.columns {
		col.PushEmptySlot()
	}
	var signature mask.Mask
	w.signatures = append(w.signatures, signature)
	w.entitiesCount++
	w.logger.Trace().Int("entity", int(id)).Int("columns", len(w.columns)).Msg("entity created")
	return id
}

// Signature returns the mask of components attached to entity
func (w *world) Signature(entity EntityID) (signature mask.Mask, err error) {
	if !w.valid(entity) {
		return signature, InvalidEntityError{Entity: entity, EntitiesCount: w.entitiesCount}
	}
	return w.signatures[entity], nil
}

func (w *world) valid(entity EntityID) bool {
	return entity >= 0 && int(entity) < w.entitiesCount
}

func (w *world) mark(entity EntityID, c Component) {
	row, _ := w.RowIndexFor(c)
	w.signatures[entity].Mark(row)
}
