package domain

// NameSet — упорядоченное множество уникальных имён (категории, типы товаров).
// Порядок вставки сохраняется, переименование не меняет позицию элемента.
type NameSet []string

// Contains проверяет наличие имени (точное совпадение, с учётом регистра)
func (s NameSet) Contains(name string) bool {
	for _, n := range s {
		if n == name {
			return true
		}
	}
	return false
}

// Insert добавляет имя, если его ещё нет. Возвращает true, если множество изменилось.
func (s *NameSet) Insert(name string) bool {
	if s.Contains(name) {
		return false
	}
	*s = append(*s, name)
	return true
}

// Rename заменяет oldName на newName на той же позиции.
// Возвращает true, если oldName присутствовал.
func (s NameSet) Rename(oldName, newName string) bool {
	for i, n := range s {
		if n == oldName {
			s[i] = newName
			return true
		}
	}
	return false
}

// Clone возвращает копию множества
func (s NameSet) Clone() NameSet {
	out := make(NameSet, len(s))
	copy(out, s)
	return out
}
