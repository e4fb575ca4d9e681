package flows

import (
	"context"
	"fmt"

	"github.com/aretw0/parley/pkg/dialog"
	"github.com/aretw0/parley/pkg/domain"
)

// bugTypeOptions carry the text to check against the category set.
type bugTypeOptions struct {
	Query string `json:"query" mapstructure:"query"`
}

// newBugType builds the bug-type lookup: confirm or deny that the queried
// text names a known category, attaching the category card on a hit.
func newBugType(deps Deps) *dialog.Waterfall {
	lookup := func(ctx context.Context, sc *dialog.StepContext) (dialog.Result, error) {
		var opts bugTypeOptions
		if o, ok := sc.Options.(bugTypeOptions); ok {
			opts = o
		} else if err := dialog.DecodeOptions(sc.Options, &opts); err != nil {
			return dialog.Result{}, fmt.Errorf("bug type options: %w", err)
		}

		category := domain.MatchCategory(opts.Query)
		if category == "" {
			sc.Turn().SendText("No that is not a bug type")
			return sc.End(ctx, nil)
		}

		sc.Turn().SendText("Yes! %s is a Bug Type!", category)
		if info, ok := deps.Catalog.Lookup(category); ok {
			sc.Turn().SendActivity(domain.Activity{
				Attachments: []domain.Attachment{{
					ContentType: domain.ContentTypeTemplateCard,
					Content: domain.TemplateCard{
						Template: domain.TemplateGeneric,
						Elements: []domain.CardElement{{
							Title:    category,
							Subtitle: info.Subtitle,
							ImageURL: info.ImageURL,
						}},
					},
				}},
			})
		}
		return sc.End(ctx, nil)
	}

	return dialog.NewWaterfall(dialogBugType, lookup)
}
