package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339
)

var copyOpts = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: time.Time{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(time.Time).Format(timeLayout), nil
			},
		},
		{
			SrcType: uuid.UUID{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(uuid.UUID).String(), nil
			},
		},
	},
}

func copyView(to, from any) error {
	return copier.CopyWithOption(to, from, copyOpts)
}
