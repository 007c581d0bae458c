// Package pagination 生成分页控件的页码序列
package pagination

// Ellipsis 页码序列中的省略标记
const Ellipsis = -1

const maxPagesToShow = 5

// Numbers 返回分页控件展示的页码序列
// 当前页居中展示最多 maxPagesToShow 个页码，
// 首尾页始终可达，跳页位置用 Ellipsis 占位
func Numbers(currentPage, totalPages int) []int {
	if totalPages <= 0 {
		return nil
	}
	if currentPage < 1 {
		currentPage = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	delta := maxPagesToShow / 2
	startPage := currentPage - delta
	if startPage < 1 {
		startPage = 1
	}
	endPage := currentPage + delta
	if endPage > totalPages {
		endPage = totalPages
	}

	// 靠近首尾时把窗口补满
	if endPage-startPage < maxPagesToShow-1 {
		if startPage == 1 {
			endPage = maxPagesToShow
			if endPage > totalPages {
				endPage = totalPages
			}
		} else if endPage == totalPages {
			startPage = totalPages - maxPagesToShow + 1
			if startPage < 1 {
				startPage = 1
			}
		}
	}

	var numbers []int
	if startPage > 1 {
		numbers = append(numbers, 1)
		if startPage > 2 {
			numbers = append(numbers, Ellipsis)
		}
	}
	for page := startPage; page <= endPage; page++ {
		numbers = append(numbers, page)
	}
	if endPage < totalPages {
		if endPage < totalPages-1 {
			numbers = append(numbers, Ellipsis)
		}
		numbers = append(numbers, totalPages)
	}
	return numbers
}
