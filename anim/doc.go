// Package anim is a small tween engine for dial scenes.
//
// An Animator owns the transition currently on screen. Each new scene
// passed to Start supersedes it; the host then asks the returned
// Transition for frames at increasing elapsed times and paints whatever
// Frame returns until done. A superseded transition refuses to produce
// frames, so stale per-frame work is never applied.
//
//	var a anim.Animator
//	tr := a.Start(res.Scene())
//	for elapsed := time.Duration(0); ; elapsed += time.Second / 60 {
//	    scene, done, ok := tr.Frame(elapsed)
//	    if !ok {
//	        break // replaced by a newer scene
//	    }
//	    paint(scene)
//	    if done {
//	        break
//	    }
//	}
package anim
