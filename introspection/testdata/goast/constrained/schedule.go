package jobs

//buildergen:builder
type Schedule struct {
	Cron string
}
