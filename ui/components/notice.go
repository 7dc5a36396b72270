package components

import (
	"github.com/Rorical/ChairFinder/internal/models"
	"github.com/Rorical/ChairFinder/ui/styles"
)

func RenderNotice(notice *models.Notice, width int) string {
	if notice == nil {
		return ""
	}
	if notice.IsError() {
		return styles.ErrorNoticeStyle(width).Render(notice.Text+"  (Esc to dismiss)") + "\n"
	}
	return styles.InfoNoticeStyle(width).Render(notice.Text) + "\n"
}
