package holiday

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/fr"
)

// Calendar 法定节假日日历能力
// 排班生成只依赖该接口，具体国家日历通过配置注入
type Calendar interface {
	IsHoliday(date time.Time) bool
}

// calendar 基于 rickar/cal 的实现
type calendar struct {
	inner *cal.Calendar
}

// NewCalendar 根据 ISO 国家代码创建节假日日历
func NewCalendar(country string) (Calendar, error) {
	c := &cal.Calendar{Name: country}

	switch country {
	case "FR":
		c.AddHoliday(fr.Holidays...)
	default:
		return nil, fmt.Errorf("不支持的节假日日历: %q", country)
	}

	return &calendar{inner: c}, nil
}

func (c *calendar) IsHoliday(date time.Time) bool {
	actual, _, _ := c.inner.IsHoliday(date)
	return actual
}
