package core

// ChannelUnread holds the per-room unread breakdown and total for one channel.
type ChannelUnread struct {
	Total int
	Rooms map[string]int
}

// UnreadSnapshot maps channel name to its unread counts for one connection.
type UnreadSnapshot map[string]ChannelUnread

// unreadFor recomputes the unread snapshot for one connection from scratch.
// A room the connection is currently in always counts as zero; every other
// room counts messages whose read set does not contain the connection.
// No cache, no incremental bookkeeping: the dataset is small and a stale
// count is worse than the recompute.
func unreadFor(t *Topology, s *session) UnreadSnapshot {
	snapshot := make(UnreadSnapshot, len(t.order))
	for _, ch := range t.Channels() {
		cu := ChannelUnread{Rooms: make(map[string]int, len(ch.order))}
		for _, room := range ch.Rooms() {
			count := 0
			if !s.in(ch.Name, room.Name) {
				for _, m := range room.Messages() {
					if !m.ReadBy(s.client.ID) {
						count++
					}
				}
			}
			cu.Rooms[room.Name] = count
			cu.Total += count
		}
		snapshot[ch.Name] = cu
	}
	return snapshot
}
