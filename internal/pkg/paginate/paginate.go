package paginate

// Pages — количество страниц при размере size (ceil). Ноль элементов —
// ноль страниц.
func Pages(total, size int) int {
	if total <= 0 || size <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Slice — полуинтервал [start, end) для нулевой нумерации страниц.
// Выход за границы зажимается, не ошибается.
func Slice(page, size, total int) (start, end int) {
	if total <= 0 || size <= 0 {
		return 0, 0
	}
	last := Pages(total, size) - 1
	if page < 0 {
		page = 0
	}
	if page > last {
		page = last
	}
	start = page * size
	end = start + size
	if end > total {
		end = total
	}
	return start, end
}
