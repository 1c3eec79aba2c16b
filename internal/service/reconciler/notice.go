package reconciler

// Notice - состояние рабочего набора, которое показывается пользователю рядом со списком.
type Notice string

const (
	NoticeNone       Notice = ""
	NoticeRefreshing Notice = "refreshing"
	NoticeStale      Notice = "stale"
)

func (n Notice) String() string {
	return string(n)
}
