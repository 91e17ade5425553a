package syncer

import (
	"sort"

	"github.com/cespare/xxhash/v2"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
	"github.com/KasumiMercury/primind-medication-reminder/internal/service/reminder"
)

// Fingerprint hashes everything a registered notification depends on: the
// plan date and, for each instance, its key and medicine name. Zero is
// reserved for "no current plan".
func Fingerprint(plan reminder.Plan) uint64 {
	keys := make([]string, 0, len(plan.Instances))
	for _, inst := range plan.Instances {
		keys = append(keys, instanceKey(inst))
	}
	sort.Strings(keys)

	d := xxhash.New()
	_, _ = d.WriteString(plan.Date.String())
	for _, k := range keys {
		_, _ = d.WriteString("\n")
		_, _ = d.WriteString(k)
	}

	sum := d.Sum64()
	if sum == 0 {
		sum = 1
	}
	return sum
}

func instanceKey(inst domain.ReminderInstance) string {
	return inst.Key() + "|" + inst.MedicineName
}
