package priority

// CategorizeByTime splits ranked priorities into morning, afternoon,
// evening, and anytime buckets.
//
// Habits land in the bucket their TimeOfDay hint names. Events land in the
// bucket their start hour falls into (before 12, before 17, else evening).
// Everything else is anytime. Relative order inside each bucket follows the
// input order.
func CategorizeByTime(items []PriorityItem) ByTimeOfDay {
	var out ByTimeOfDay

	for _, item := range items {
		switch {
		case item.Type == KindHabit && item.Item.Habit != nil && item.Item.Habit.TimeOfDay != "":
			switch item.Item.Habit.TimeOfDay {
			case "morning":
				out.Morning = append(out.Morning, item)
			case "afternoon":
				out.Afternoon = append(out.Afternoon, item)
			case "evening":
				out.Evening = append(out.Evening, item)
			default:
				out.Anytime = append(out.Anytime, item)
			}
		case item.Type == KindEvent && item.Item.Event != nil && item.Item.Event.Start != nil:
			hour := item.Item.Event.Start.Hour()
			switch {
			case hour < 12:
				out.Morning = append(out.Morning, item)
			case hour < 17:
				out.Afternoon = append(out.Afternoon, item)
			default:
				out.Evening = append(out.Evening, item)
			}
		default:
			out.Anytime = append(out.Anytime, item)
		}
	}

	return out
}
