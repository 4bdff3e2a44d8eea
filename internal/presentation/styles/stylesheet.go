package styles

// PlaceholderCSS styles the muted box drawn where an image is missing.
const PlaceholderCSS = "display:flex;align-items:center;justify-content:center;width:100%;aspect-ratio:4/3;background:#f3f4f6;color:#9ca3af;font-size:14px;border-radius:8px"

// UnknownCSS styles the live preview's block for unrecognised section types.
const UnknownCSS = "border:2px dashed #f59e0b;background:#fffbeb;color:#92400e;padding:24px;border-radius:8px;text-align:center;font-family:ui-monospace,Menlo,monospace"

// Stylesheet holds the keyframes, effects and breakpoints both page renderers
// inline into their document.
const Stylesheet = `*,*::before,*::after{box-sizing:border-box}
body{margin:0;-webkit-font-smoothing:antialiased}
img{max-width:100%;height:auto;display:block}
a{color:inherit}
@keyframes tp-shine{0%{left:-75%}100%{left:125%}}
@keyframes tp-pulse{0%,100%{transform:scale(1)}50%{transform:scale(1.05)}}
@keyframes tp-bounce{0%,100%{transform:translateY(0)}50%{transform:translateY(-6px)}}
@keyframes tp-fade-up{from{opacity:0;transform:translateY(16px)}to{opacity:1;transform:translateY(0)}}
.tp-fx-shine::after{content:"";position:absolute;top:0;left:-75%;width:50%;height:100%;background:linear-gradient(120deg,transparent,rgba(255,255,255,0.45),transparent);animation:tp-shine 2.4s infinite}
.tp-fx-pulse{animation:tp-pulse 1.8s ease-in-out infinite}
.tp-fx-bounce{animation:tp-bounce 1.4s ease-in-out infinite}
.tp-btn:hover{opacity:0.88}
.tp-section{animation:tp-fade-up 0.6s ease-out both}
.tp-cols-1{grid-template-columns:repeat(1,minmax(0,1fr))}
.tp-cols-2{grid-template-columns:repeat(2,minmax(0,1fr))}
.tp-cols-3{grid-template-columns:repeat(3,minmax(0,1fr))}
.tp-cols-4{grid-template-columns:repeat(4,minmax(0,1fr))}
.tp-nav{display:flex;gap:24px;align-items:center}
.tp-nav-toggle{display:none}
details.tp-accordion-item>summary{cursor:pointer;list-style:none}
details.tp-accordion-item>summary::-webkit-details-marker{display:none}
details.tp-accordion-item[open]>summary .tp-accordion-icon{transform:rotate(45deg)}
#tp-floating-cta{transition:opacity 0.3s,transform 0.3s}
#tp-floating-cta.tp-hidden{opacity:0;transform:translateY(120%);pointer-events:none}
@media (max-width:768px){
.tp-cols-2,.tp-cols-3,.tp-cols-4{grid-template-columns:repeat(1,minmax(0,1fr))}
.tp-split,.tp-split-reverse{flex-direction:column !important;align-items:stretch !important}
.tp-nav{display:none}
.tp-nav.tp-open{display:flex;flex-direction:column;position:absolute;top:100%;left:0;right:0;padding:16px;background:rgba(0,0,0,0.85)}
.tp-nav-toggle{display:block}
}`
