// Package reconcile matches preset entries against the launcher manifest.
//
// Reconciliation walks the preset in order and looks every entry up in the
// manifest by workshop id:
//
//   - no installed item: the entry is set aside as unmatched
//   - names differ: a ConflictingDisplayNamesError warning is recorded and the
//     manifest name is used
//   - manifest name contains the separator: reconciliation fails
//   - otherwise: a MergedItem is produced from the manifest record
//
// The reconciler never decides whether unmatched entries halt a build; it
// only reports them. That decision belongs to the caller (see the Confirmer
// in feature/builder).
//
// # Usage Example
//
//	result, err := reconcile.Reconcile(doc.Entries, installed, reconcile.Options{
//	    OnWarning: func(w *modlist.ConflictingDisplayNamesError) {
//	        log.Warn("Conflicting display names", zap.Error(w))
//	    },
//	})
//	if err != nil {
//	    return err
//	}
//	if result.HasUnmatched() {
//	    // ask the user
//	}
package reconcile
