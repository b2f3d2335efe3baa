package schedule

import "github.com/Aryan-Wadhawan/masaje-app/pkg/types"

func mustTime(s string) types.TimeOfDay {
	t, err := types.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}
