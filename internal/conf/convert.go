package conf

import (
	"github.com/afrinode-dev/userbot/internal/biz/usecase"
)

// ToRouterConfig converts to the router configuration.
func (c *Config) ToRouterConfig() usecase.RouterConfig {
	return usecase.DefaultRouterConfig(c.Forward.DestChat)
}

// ToDispatcherConfig converts to the dispatcher configuration.
func (c *Config) ToDispatcherConfig() usecase.DispatcherConfig {
	r := c.Replies
	if r == nil {
		r = DefaultRepliesConfig()
	}
	return usecase.DispatcherConfig{
		AdminID:   c.Forward.AdminID,
		BannerURL: c.Forward.BannerURL,
		Text: usecase.ReplyText{
			MenuCaption:     r.Menu.Caption,
			BtnAddSource:    r.Menu.AddSource,
			BtnRemoveSource: r.Menu.RemoveSource,
			BtnListSources:  r.Menu.ListSources,
			BtnStopForward:  r.Menu.StopForward,
			BtnStartForward: r.Menu.StartForward,

			UsageAdd:    r.Sources.UsageAdd,
			UsageRemove: r.Sources.UsageRemove,
			Added:       r.Sources.Added,
			Removed:     r.Sources.Removed,
			Exists:      r.Sources.Exists,
			Missing:     r.Sources.Missing,
			ListHeader:  r.Sources.ListHeader,
			ListEmpty:   r.Sources.ListEmpty,

			ForwardStarted: r.Forward.Started,
			ForwardStopped: r.Forward.Stopped,

			CallbackAddHint:    r.Callback.AddHint,
			CallbackRemoveHint: r.Callback.RemoveHint,

			StatsReport: r.Stats.Report,
			StateOn:     r.Stats.On,
			StateOff:    r.Stats.Off,

			DeadHeader: r.Stats.DeadHeader,
			DeadEmpty:  r.Stats.DeadEmpty,
		},
	}
}
